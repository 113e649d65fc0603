// Package storage persists uploaded attachment files outside the database.
//
// Files are addressed by generated keys, the database rows keep the key
// together with the user-visible metadata.
package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage is a file store rooted at a single directory.
type Storage struct {
	root string
}

// New opens the store, creating the root directory if needed.
func New(root string) (*Storage, error) {
	err := os.MkdirAll(root, 0o755)
	if err != nil {
		return nil, err
	}

	return &Storage{root: root}, nil
}

// Save writes the content under a generated key and returns the key.
// The original file name only contributes its extension, so uploads can
// neither collide nor escape the root directory.
func (s *Storage) Save(fileName string, r io.Reader) (string, error) {
	key := uuid.NewString() + strings.ToLower(filepath.Ext(filepath.Base(fileName)))

	f, err := os.Create(filepath.Join(s.root, key))
	if err != nil {
		return "", err
	}

	_, err = io.Copy(f, r)
	if err != nil {
		f.Close()
		return "", err
	}

	return key, f.Close()
}

// Open returns the content stored under the key. The caller closes it.
func (s *Storage) Open(key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, filepath.Base(key)))
}

// Delete removes the content stored under the key. Deleting a key that is
// already gone is not an error.
func (s *Storage) Delete(key string) error {
	err := os.Remove(filepath.Join(s.root, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
