package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore is a file-based store for CLI applications.
// Each key is stored as a JSON file in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based store.
// If baseDir is empty, defaults to ~/.config/ghexplorer/store/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "ghexplorer", "store")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) listPath(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}

func (s *FileStore) GetStringList(ctx context.Context, key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.listPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read list file: %w", err)
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse list: %w", err)
	}
	return list, nil
}

func (s *FileStore) SetStringList(ctx context.Context, key string, value []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal list: %w", err)
	}
	if err := os.WriteFile(s.listPath(key), data, 0600); err != nil {
		return fmt.Errorf("write list file: %w", err)
	}
	return nil
}

func (s *FileStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.listPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove list file: %w", err)
	}
	return nil
}

func (s *FileStore) Close(ctx context.Context) error {
	return nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
