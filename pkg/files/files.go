package files

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("empty file name")

// Store writes uploads into one flat directory. Stored names combine
// the original base name with a unique suffix and the original
// extension, so concurrent uploads of the same file cannot collide.
type Store struct {
	Dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{Dir: dir}, nil
}

func (s *Store) Save(name string, data []byte) (string, error) {
	base := filepath.Base(name)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", ErrEmptyName
	}
	ext := filepath.Ext(base)
	stored := strings.TrimSuffix(base, ext) + uuid.New().String() + ext

	if err := os.WriteFile(filepath.Join(s.Dir, stored), data, 0o644); err != nil {
		return "", err
	}
	return stored, nil
}

// Remove deletes a stored file. A file that is already gone counts as
// removed, so a record never becomes undeletable over a lost thumbnail.
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, filepath.Base(name)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
