package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage defines the interface for warehouse image storage backends.
// The local implementation serves files straight off disk; a cloud
// backend (S3, GCS) can replace it behind the same interface.
type Storage interface {
	// Save stores the image and returns its public URL.
	Save(ctx context.Context, originalName, contentType string, reader io.Reader) (string, error)

	// Open returns a reader for a previously stored key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether the key is stored and its size.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// Delete removes the stored file. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// LocalStorage keeps warehouse images on the local filesystem and serves
// them through the API's /uploads route.
type LocalStorage struct {
	baseURL   string
	uploadDir string
}

func NewLocalStorage(baseURL, uploadDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		baseURL:   strings.TrimRight(baseURL, "/"),
		uploadDir: uploadDir,
	}, nil
}

func (s *LocalStorage) Save(ctx context.Context, originalName, contentType string, reader io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if expected, ok := allowedExtensions[ext]; !ok || (contentType != "" && contentType != expected) {
		return "", fmt.Errorf("unsupported image type %q", originalName)
	}

	key := uuid.New().String() + ext
	fullPath := filepath.Join(s.uploadDir, key)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s", s.baseURL, key), nil
}

func (s *LocalStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func (s *LocalStorage) Exists(ctx context.Context, key string) (bool, int64, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return false, 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// keyPath rejects keys that would escape the upload directory.
func (s *LocalStorage) keyPath(key string) (string, error) {
	if key == "" || strings.Contains(key, "/") || strings.Contains(key, "\\") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.uploadDir, key), nil
}
