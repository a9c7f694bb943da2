package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load("non-existent-config.yaml")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	assertDefaultConfig(t, cfg)
}

func TestLoadWithPartialConfigAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  address: ":9090"
database:
  driver: ""
  sqlite: {}
storage:
  type: s3
  s3:
    bucket: cms-assets
    region: eu-central-1
    access_key: key
    secret_key: secret
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Address != ":9090" {
		t.Fatalf("expected server address :9090, got %s", cfg.Server.Address)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected database driver sqlite, got %s", cfg.Database.Driver)
	}
	if cfg.Database.SQLite.Path != "data/cms.db" {
		t.Fatalf("expected sqlite path data/cms.db, got %s", cfg.Database.SQLite.Path)
	}
	if cfg.Storage.Type != "s3" {
		t.Fatalf("expected storage type s3, got %s", cfg.Storage.Type)
	}
	if cfg.Storage.S3.Bucket != "cms-assets" {
		t.Fatalf("expected bucket cms-assets, got %s", cfg.Storage.S3.Bucket)
	}
	if cfg.Upload.MaxSize != 10*1024*1024 {
		t.Fatalf("expected default upload max size, got %d", cfg.Upload.MaxSize)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  address: ":9090"
  listen_backlog: 128
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown config field")
	}
}

func assertDefaultConfig(t *testing.T, cfg *Config) {
	t.Helper()
	if cfg == nil {
		t.Fatalf("config is nil")
	}
	if cfg.Server.Address != ":5000" {
		t.Fatalf("expected default address :5000, got %s", cfg.Server.Address)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected default driver sqlite, got %s", cfg.Database.Driver)
	}
	if cfg.Database.SQLite.Path != "data/cms.db" {
		t.Fatalf("expected default sqlite path data/cms.db, got %s", cfg.Database.SQLite.Path)
	}
	if cfg.Storage.Type != "local" {
		t.Fatalf("expected default storage type local, got %s", cfg.Storage.Type)
	}
	if cfg.Storage.Local.BasePath != "data/uploads" {
		t.Fatalf("expected default upload dir data/uploads, got %s", cfg.Storage.Local.BasePath)
	}
}
