package storage

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const appDirName = "masterplan"

// Store is the file-storage capability every persistence component works
// through. Backed by the OS filesystem in the app and by an in-memory fs in
// tests.
type Store struct {
	Fs      afero.Fs
	DataDir string
}

// NewOS returns a store over the real filesystem. An empty dataDir resolves
// to the per-user application data directory.
func NewOS(dataDir string) (Store, error) {
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Store{}, err
		}
		dataDir = filepath.Join(base, appDirName)
	}
	return Store{Fs: afero.NewOsFs(), DataDir: dataDir}, nil
}

// NewMem returns an in-memory store for tests.
func NewMem() Store {
	return Store{Fs: afero.NewMemMapFs(), DataDir: "/data"}
}

func (s Store) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(s.Fs, path)
}

// WriteFile writes data, creating parent directories as needed.
func (s Store) WriteFile(path string, data []byte) error {
	if err := s.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(s.Fs, path, data, 0o644)
}

func (s Store) Exists(path string) bool {
	ok, err := afero.Exists(s.Fs, path)
	return err == nil && ok
}

func (s Store) MkdirAll(path string) error {
	return s.Fs.MkdirAll(path, 0o755)
}

func (s Store) Remove(path string) error {
	return s.Fs.Remove(path)
}
