package configs

import "time"

type Realtime struct {
	Channel        string        `env:"REALTIME_CHANNEL" envDefault:"portal_changes"`
	ReconnectDelay time.Duration `env:"REALTIME_RECONNECT_DELAY" envDefault:"5s"`
}
