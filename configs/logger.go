package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"alumni-portal"`
	URL     string `env:"LOKI_URL"`
}
