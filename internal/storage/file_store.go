package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// FileStore keeps each blob as a plain file under a base directory, one
// file per key. Useful where sqlite is unavailable or the data directory
// should stay human-inspectable.
type FileStore struct {
	d *diskv.Diskv
}

func OpenFileStore(basePath string) (*FileStore, error) {
	if basePath == "" {
		return nil, fmt.Errorf("storage: empty base path")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024,
	})}, nil
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	value, err := s.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *FileStore) Save(_ context.Context, key string, value []byte) error {
	return s.d.Write(key, value)
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	if err := s.d.Erase(key); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
