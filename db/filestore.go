package db

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nvoss/quill/domain"
)

// FileStore keeps the collection in a single JSON file, written
// atomically via a temp file and rename.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() (*domain.Collection, error) {
	buf, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var col domain.Collection
	if err := json.Unmarshal(buf, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

func (f *FileStore) Save(c *domain.Collection) error {
	payload, err := json.MarshalIndent(c, "", " ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".quill-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
