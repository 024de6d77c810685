package configs

import "time"

type Session struct {
	Lifetime     time.Duration `env:"SESSION_LIFETIME" envDefault:"24h"`
	CookieName   string        `env:"SESSION_COOKIE_NAME" envDefault:"alumni_session"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE" envDefault:"true"`
}
