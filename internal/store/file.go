// internal/store/file.go
package store

import (
	"log"
	"os"
	"path/filepath"
)

// FileStore writes one file per key under a session directory. It outlives a
// server restart on the same machine but is still a session cache, not a
// database; wiping the directory resets everything.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStore) Get(key string) ([]byte, bool) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println("⚠️ failed to read session key", key+":", err)
		}
		return nil, false
	}
	return raw, true
}

func (f *FileStore) Set(key string, value []byte) error {
	return os.WriteFile(f.path(key), value, 0o644)
}

func (f *FileStore) Remove(key string) {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		log.Println("⚠️ failed to remove session key", key+":", err)
	}
}
