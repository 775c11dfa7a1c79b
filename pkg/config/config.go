package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Artifacts ArtifactConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
}

// ArtifactConfig points at the exported regressor and scaler.
type ArtifactConfig struct {
	ModelPath  string
	ScalerPath string
}

const (
	DefaultModelPath  = "models/champion_random_forest.json"
	DefaultScalerPath = "models/scaler.json"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: must be positive")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "InsureAI Estimate"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: timeout,
		},
		Artifacts: ArtifactConfig{
			ModelPath:  getEnv("MODEL_PATH", DefaultModelPath),
			ScalerPath: getEnv("SCALER_PATH", DefaultScalerPath),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
