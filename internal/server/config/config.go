// Package config handles configuration for the server component.
// Everything comes from the environment; a .env file is honored in
// development. Missing required variables are a startup failure.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the Ingria backend.
type Config struct {
	// HTTP
	Addr               string   `env:"SERVER_ADDR" envDefault:":8080"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// Database
	DatabaseDSN string `env:"DATABASE_DSN,required,notEmpty"`

	// AI provider. Exactly one provider is active per process; it is chosen
	// here, at configuration time, not per request.
	AIProvider  string  `env:"AI_PROVIDER" envDefault:"gemini"`
	GeminiKey   string  `env:"GOOGLE_API_KEY"`
	GeminiModel string  `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash-8b"`
	GrokKey     string  `env:"GROK_API_KEY"`
	GrokBaseURL string  `env:"GROK_BASE_URL" envDefault:"https://api.x.ai/v1"`
	GrokModel   string  `env:"GROK_MODEL" envDefault:"grok-2-vision-1212"`
	Temperature float32 `env:"AI_TEMPERATURE" envDefault:"0"`

	// Object storage (S3-compatible)
	S3AccessKey     string `env:"S3_ACCESS_KEY,required,notEmpty"`
	S3SecretKey     string `env:"S3_SECRET_KEY,required,notEmpty"`
	S3Bucket        string `env:"S3_BUCKET" envDefault:"media"`
	S3Region        string `env:"S3_REGION" envDefault:"us-east-1"`
	S3BaseEndpoint  string `env:"S3_BASE_ENDPOINT,required,notEmpty"`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL,required,notEmpty"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AIProvider {
	case "gemini":
		if c.GeminiKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required when AI_PROVIDER=gemini")
		}
	case "grok":
		if c.GrokKey == "" {
			return fmt.Errorf("GROK_API_KEY is required when AI_PROVIDER=grok")
		}
	default:
		return fmt.Errorf("unknown AI_PROVIDER: %s", c.AIProvider)
	}
	return nil
}
