package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer     = "careersphere"
	defaultTokenDuration   = 7 * 24 * time.Hour
	defaultHTTPAddress     = ":3000"
	defaultShutdownTimeout = 10 * time.Second
	defaultMongoDBName     = "careersphere"
	defaultGeminiModel     = "gemini-2.5-flash"
	defaultGeminiBaseURL   = "https://generativelanguage.googleapis.com"
	defaultEnvFile         = ".env"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			BcryptCost:    bcrypt.DefaultCost,
		},
		Storage: Storage{
			DB: DB{Name: defaultMongoDBName},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Adapter: Adapter{
			GeminiModel:   defaultGeminiModel,
			GeminiBaseURL: defaultGeminiBaseURL,
		},
	}
}
