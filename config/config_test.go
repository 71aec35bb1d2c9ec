package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MODEL_PATH", "models/screening.onnx")
	t.Setenv("SECRET_KEY", "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY=")
	t.Setenv("DATABASE_URL", "sqlite://autivision.db")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("GRPC_ADDR", "")
	t.Setenv("INFER_TIMEOUT", "")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UploadDir != "uploads" {
		t.Fatalf("expected default upload dir, got %q", cfg.UploadDir)
	}
	if cfg.HTTPAddr != ":8088" || cfg.GRPCAddr != ":8008" {
		t.Fatalf("unexpected default addresses %q / %q", cfg.HTTPAddr, cfg.GRPCAddr)
	}
	if cfg.InferTimeout != 30*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.InferTimeout)
	}
}

func TestLoadRequiresModelPath(t *testing.T) {
	setRequired(t)
	t.Setenv("MODEL_PATH", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error without MODEL_PATH")
	}
}

func TestLoadRejectsShortSecretKey(t *testing.T) {
	setRequired(t)
	t.Setenv("SECRET_KEY", "dG9vLXNob3J0")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a short secret key")
	}
}

func TestLoadParsesInferTimeout(t *testing.T) {
	setRequired(t)
	t.Setenv("INFER_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InferTimeout != 5*time.Second {
		t.Fatalf("expected 5s, got %v", cfg.InferTimeout)
	}
}
