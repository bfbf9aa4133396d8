package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingMongoURI is returned when no document-store connection string is
// configured. The process must not start without one.
var ErrMissingMongoURI = errors.New("MONGO_URI is not set")

// Config holds all service configuration loaded from the environment,
// optionally seeded from a .env file.
type Config struct {
	Port               string
	MongoURI           string
	MongoDB            string
	MongoTLSInsecure   bool
	LogLevel           string
	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("MONGO_DB", "userhub")
	viper.SetDefault("MONGO_TLS_INSECURE", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		MongoURI:         viper.GetString("MONGO_URI"),
		MongoDB:          viper.GetString("MONGO_DB"),
		MongoTLSInsecure: viper.GetBool("MONGO_TLS_INSECURE"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
	}
	for _, o := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	if cfg.MongoURI == "" {
		return nil, ErrMissingMongoURI
	}
	return cfg, nil
}
