package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every externally injected setting the service needs. Values
// come from the process environment, optionally seeded from a .env file.
type Config struct {
	ModelPath    string
	UploadDir    string
	SecretKey    string
	DatabaseURL  string
	HTTPAddr     string
	GRPCAddr     string
	InferTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present; real environment variables win.
func Load() (*Config, error) {
	// Ignore a missing .env, it is only a local convenience.
	_ = godotenv.Load()

	cfg := &Config{
		ModelPath:    os.Getenv("MODEL_PATH"),
		UploadDir:    os.Getenv("UPLOAD_DIR"),
		SecretKey:    os.Getenv("SECRET_KEY"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		HTTPAddr:     getEnv("HTTP_ADDR", ":8088"),
		GRPCAddr:     getEnv("GRPC_ADDR", ":8008"),
		InferTimeout: 30 * time.Second,
	}

	if raw := os.Getenv("INFER_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid INFER_TIMEOUT %q: %w", raw, err)
		}
		cfg.InferTimeout = d
	}

	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("MODEL_PATH is required")
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}
	// The key encrypts cookies; fiber's encryptcookie middleware wants 32
	// raw bytes, base64-encoded.
	if raw, err := base64.StdEncoding.DecodeString(cfg.SecretKey); err != nil || len(raw) != 32 {
		return nil, fmt.Errorf("SECRET_KEY must be a base64-encoded 32-byte key")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
