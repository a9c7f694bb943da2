package validator

import "testing"

func TestValidateFileSize(t *testing.T) {
	cfg := &UploadConfig{MaxFileSize: 100}

	if err := cfg.ValidateFileSize(0); err == nil {
		t.Fatalf("expected error for empty file")
	}
	if err := cfg.ValidateFileSize(101); err == nil {
		t.Fatalf("expected error for oversized file")
	}
	if err := cfg.ValidateFileSize(100); err != nil {
		t.Fatalf("unexpected error at the limit: %v", err)
	}
}

func TestValidateFileSizeFallsBackToDefaultLimit(t *testing.T) {
	cfg := &UploadConfig{}
	if err := cfg.ValidateFileSize(DefaultMaxUploadSize + 1); err == nil {
		t.Fatalf("expected error beyond default limit")
	}
	if err := cfg.ValidateFileSize(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
