// Package local implements the local filesystem storage backend. It is the
// development default; the HTTP server exposes the base path as a static
// route so the returned URLs resolve.
package local

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage implements the storage.Storage interface using the local filesystem.
type Storage struct {
	basePath string
	baseURL  string
}

// New creates a new local storage backend.
// basePath is the root directory for stored files (e.g. "data/uploads");
// baseURL is the URL prefix the files are served under (e.g. "/uploads").
func New(basePath, baseURL string) (*Storage, error) {
	if basePath == "" {
		basePath = "data/uploads"
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	return &Storage{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Upload writes the payload under "{basePath}/{folder}/{uuid}{ext}" and
// returns its URL under the configured base URL.
func (s *Storage) Upload(ctx context.Context, folder, fileName, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty upload payload")
	}

	key := objectKey(folder, fileName)
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("write file: %w", err)
	}

	return s.baseURL + "/" + key, nil
}

// Type returns "local" as the storage backend identifier.
func (s *Storage) Type() string {
	return "local"
}

// BasePath returns the root directory files are written under.
func (s *Storage) BasePath() string {
	return s.basePath
}

func objectKey(folder, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	name := uuid.NewString() + ext
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}
