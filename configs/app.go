package configs

type App struct {
	Environment   string `env:"ENVIRONMENT,notEmpty"`
	CommunityName string `env:"COMMUNITY_NAME" envDefault:"Alumni Network"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
