package configs

type DB struct {
	URL           string `env:"DATABASE_URL,notEmpty"`
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"migrations"`
}
