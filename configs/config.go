package configs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type PortalAPIConfig struct {
	App      App
	DB       DB
	Logger   Logger
	HTTP     HTTP
	Session  Session
	Realtime Realtime
}

type PromotionServiceConfig struct {
	App       App
	DB        DB
	Logger    Logger
	HTTP      HTTP
	Promotion Promotion
	Telegram  Telegram
	Discord   Discord
}

type PortalCtlConfig struct {
	App       App
	DB        DB
	Logger    Logger
	Promotion Promotion
	Telegram  Telegram
	Discord   Discord
}

func LoadPortalAPIConfig() (PortalAPIConfig, error) {
	var config PortalAPIConfig

	if err := parse(&config); err != nil {
		return PortalAPIConfig{}, err
	}

	return config, nil
}

func LoadPromotionServiceConfig() (PromotionServiceConfig, error) {
	var config PromotionServiceConfig

	if err := parse(&config); err != nil {
		return PromotionServiceConfig{}, err
	}

	return config, nil
}

func LoadPortalCtlConfig() (PortalCtlConfig, error) {
	var config PortalCtlConfig

	if err := parse(&config); err != nil {
		return PortalCtlConfig{}, err
	}

	return config, nil
}

func parse(config interface{}) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}
