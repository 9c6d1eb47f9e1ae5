package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv mirrors the variable names used by earlier deployments.
type legacyEnv struct {
	MongoURI     string `env:"MONGO_URI"`
	JWTSecret    string `env:"JWT_SECRET"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	Port         string `env:"PORT"`
}

// parseLegacyEnv maps the legacy variables onto a [StructuredConfig].
// It is merged first, so the prefixed variables always win.
func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App:     App{TokenSignKey: legacy.JWTSecret},
		Storage: Storage{DB: DB{DSN: legacy.MongoURI}},
		Adapter: Adapter{GeminiAPIKey: legacy.GeminiAPIKey},
	}
	if legacy.Port != "" {
		cfg.Server.HTTPAddress = ":" + legacy.Port
	}
	return cfg, nil
}
