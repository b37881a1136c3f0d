package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrFileNotFound = errors.New("file not found in store")

// Store is a local-disk blob store. Blobs live directly under the root
// directory with generated names; the original filename survives only as the
// extension.
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

// Sub returns a store rooted at a subdirectory of this store, creating it if
// needed.
func (s *Store) Sub(dir string) (*Store, error) {
	return New(filepath.Join(s.root, dir))
}

// GenerateName produces a collision-free storage name keeping the original
// extension.
func GenerateName(originalFilename string) string {
	ext := ""
	if idx := strings.LastIndex(originalFilename, "."); idx >= 0 {
		ext = originalFilename[idx:]
	}
	return uuid.NewString() + ext
}

// Save writes the blob under name and returns the full path on disk.
func (s *Store) Save(name string, data []byte) (string, error) {
	path := filepath.Join(s.root, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob %s: %w", name, err)
	}
	return path, nil
}

func (s *Store) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return data, nil
}

// Find reads a blob by exact name, falling back to a prefix/suffix scan of
// the root. The fallback covers lookups by a bare generated id or a bare
// extensionless name.
func (s *Store) Find(name string) ([]byte, error) {
	data, err := s.Read(name)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, ErrFileNotFound) {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		candidate := entry.Name()
		if strings.HasPrefix(candidate, name) || strings.HasSuffix(candidate, name) {
			return os.ReadFile(filepath.Join(s.root, candidate))
		}
	}
	return nil, ErrFileNotFound
}

// Remove deletes the blob; a missing blob counts as success.
func (s *Store) Remove(name string) error {
	err := os.Remove(filepath.Join(s.root, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RemovePath deletes a blob by its stored absolute/relative path, again
// treating a missing file as success.
func RemovePath(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) Root() string {
	return s.root
}
