package config

import "os"

const (
	RegistrationStrict  = "strict"
	RegistrationLenient = "lenient"
)

type Config struct {
	GeminiAPIKey     string
	RedisURL         string
	RedisToken       string
	RegistrationMode string
	Port             string
}

func Load() Config {
	cfg := Config{
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		RedisURL:         os.Getenv("REDIS_URL"),
		RedisToken:       os.Getenv("REDIS_TOKEN"),
		RegistrationMode: os.Getenv("REGISTRATION_MODE"),
		Port:             os.Getenv("PORT"),
	}

	if cfg.RegistrationMode == "" {
		cfg.RegistrationMode = RegistrationStrict
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg
}
