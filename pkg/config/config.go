package config

import "github.com/spf13/viper"

type Config struct {
	Addr          string
	Storage       string
	DatabaseURL   string
	UploadsDir    string
	MigrationsDir string
	TokenSecret   string
}

// Load reads configuration from the environment, with defaults that
// bring the server up on an in-memory store.
func Load() *Config {
	v := viper.New()
	v.SetDefault("ADDR", ":8080")
	v.SetDefault("STORAGE", "memory")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("UPLOADS_DIR", "uploads")
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("TOKEN_SECRET", "nyEJB9GIy9aiwcRh")
	v.AutomaticEnv()

	return &Config{
		Addr:          v.GetString("ADDR"),
		Storage:       v.GetString("STORAGE"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		UploadsDir:    v.GetString("UPLOADS_DIR"),
		MigrationsDir: v.GetString("MIGRATIONS_DIR"),
		TokenSecret:   v.GetString("TOKEN_SECRET"),
	}
}
