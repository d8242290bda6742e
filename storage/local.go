package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rolemap/api-go/config"
)

// LocalStorage writes uploads under a local directory which the server
// exposes through static file serving.
type LocalStorage struct {
	Dir       string
	publicURL string
}

func NewLocalStorage(cfg *config.LocalStorageConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{Dir: cfg.Dir, publicURL: strings.TrimSuffix(cfg.PublicURL, "/")}, nil
}

func (l *LocalStorage) Save(key string, contentType string, reader io.Reader) error {
	path, err := l.resolve(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, reader)
	return err
}

func (l *LocalStorage) Delete(key string) error {
	path, err := l.resolve(key)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (l *LocalStorage) PublicURL(key string) string {
	return l.publicURL + "/" + key
}

// resolve maps a key to a path inside Dir, refusing traversal outside it.
func (l *LocalStorage) resolve(key string) (string, error) {
	path := filepath.Join(l.Dir, filepath.FromSlash(key))
	if !strings.HasPrefix(path, filepath.Clean(l.Dir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid storage key")
	}
	return path, nil
}
