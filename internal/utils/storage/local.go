package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

type (
	// ImageStore keeps one PNG per product row, named by the row id.
	// Image writes and deletes are deliberately not atomic with the
	// database operations they accompany.
	ImageStore interface {
		EnsureDir() error
		Save(id uint, data []byte) error
		Delete(id uint) error
		Path(id uint) string
		Exists(id uint) bool
	}

	localImageStore struct {
		dir string
	}
)

func NewLocalImageStore(dir string) ImageStore {
	if dir == "" {
		dir = filepath.Join("DB", "images")
	}
	return &localImageStore{dir: dir}
}

func (s *localImageStore) EnsureDir() error {
	return os.MkdirAll(s.dir, os.ModePerm)
}

func (s *localImageStore) Save(id uint, data []byte) error {
	if err := s.EnsureDir(); err != nil {
		return err
	}
	return os.WriteFile(s.Path(id), data, 0644)
}

// Delete removes the stored image if present. A missing file is a no-op,
// never an error.
func (s *localImageStore) Delete(id uint) error {
	err := os.Remove(s.Path(id))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *localImageStore) Path(id uint) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d.png", id))
}

func (s *localImageStore) Exists(id uint) bool {
	_, err := os.Stat(s.Path(id))
	return err == nil
}
