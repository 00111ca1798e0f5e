package expense

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

//go:generate mockgen -source=file_store.go -destination=mock/file_store_mock.go -package=mock

// FileStore persists receipt uploads. Save returns the path stored in the
// expense_file row; Remove treats an already-missing file as removed.
type FileStore interface {
	Save(filename string, r io.Reader) (string, error)
	Remove(path string) error
}

type diskFileStore struct {
	baseDir string
}

func NewDiskFileStore(baseDir string) (FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &diskFileStore{baseDir: baseDir}, nil
}

func (s *diskFileStore) Save(filename string, r io.Reader) (string, error) {
	stored := filepath.Join(s.baseDir, uuid.New().String()+"-"+filepath.Base(filename))

	f, err := os.Create(stored)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(stored)
		return "", err
	}
	return stored, nil
}

func (s *diskFileStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
