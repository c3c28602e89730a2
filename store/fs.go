package store

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// FS stores one file per key under a root directory. Keys are
// path-escaped in file names, so any key round-trips.
type FS struct {
	root string
}

// NewFS creates the root directory if needed and returns the store.
func NewFS(root string) (*FS, error) {
	info, err := os.Stat(root)
	switch {
	case err == nil && !info.IsDir():
		return nil, &Error{Op: "open", Key: root, Kind: KindCorrupt, Err: errors.New("not a directory")}
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return nil, &Error{Op: "open", Key: root, Kind: KindIO, Err: err}
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, &Error{Op: "open", Key: root, Kind: KindIO, Err: err}
	}
	return &FS{root: root}, nil
}

// WriteBlob stores payload under key. Last write wins.
func (s *FS) WriteBlob(key string, payload []byte) error {
	if err := os.WriteFile(s.path(key), payload, 0o644); err != nil {
		return &Error{Op: "write", Key: key, Kind: KindIO, Err: err}
	}
	return nil
}

// ReadBlob returns the blob stored under key.
func (s *FS) ReadBlob(key string) ([]byte, error) {
	payload, err := os.ReadFile(s.path(key))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, &Error{Op: "read", Key: key, Kind: KindNotFound, Err: err}
	case err != nil:
		return nil, &Error{Op: "read", Key: key, Kind: KindIO, Err: err}
	}
	return payload, nil
}

func (s *FS) path(key string) string {
	return filepath.Join(s.root, url.PathEscape(key)+".blob")
}
