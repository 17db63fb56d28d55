package cache

import (
	"context"
	"os"
	"path/filepath"
)

// FileCache implements a file-based cache for CLI usage. Entries are stored
// as plain PNG files so other programs (a browser, an image viewer) can open
// them directly by path.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache in the given directory.
// The directory will be created if it doesn't exist.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get retrieves a value from the cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(c.Path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in the cache.
func (c *FileCache) Set(ctx context.Context, key string, data []byte) error {
	path := c.Path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Delete removes a value from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.Path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes the whole cache directory.
func (c *FileCache) Clear() error {
	return os.RemoveAll(c.dir)
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// Path converts a cache key to a file path. The path is stable for a given
// key, so callers may hand it to external programs after Set.
// Uses a hash-based subdirectory to avoid too many files in one dir.
func (c *FileCache) Path(key string) string {
	hash := Hash([]byte(key))
	subdir := hash[:2]
	filename := hash[2:] + ".png"
	return filepath.Join(c.dir, subdir, filename)
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
