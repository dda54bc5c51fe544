package config

import "github.com/spf13/viper"

// Config collects every runtime setting in one explicit object that gets
// passed into construction instead of being read from globals.
type Config struct {
	AppPort       string
	DatabaseDSN   string
	JWTSecret     string
	RabbitMQURL   string
	AdminEmail    string
	AdminPassword string
}

// Load builds a Config from environment variables with sensible defaults.
func Load() *Config {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=appleaday port=5432 sslmode=disable")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.AutomaticEnv()

	return &Config{
		AppPort:       v.GetString("APP_PORT"),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
		AdminEmail:    v.GetString("ADMIN_EMAIL"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
	}
}
