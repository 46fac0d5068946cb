package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage writes under root and serves files from urlPrefix.
type LocalStorage struct {
	root      string
	urlPrefix string
}

func NewLocalStorage(root, urlPrefix string) (*LocalStorage, error) {
	if root == "" {
		root = "public/uploads"
	}
	if urlPrefix == "" {
		urlPrefix = "/uploads"
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &LocalStorage{
		root:      abs,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
	}, nil
}

// Root is the directory served as static files.
func (s *LocalStorage) Root() string {
	return s.root
}

func (s *LocalStorage) URLPrefix() string {
	return s.urlPrefix
}

func (s *LocalStorage) Save(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error) {
	rel := path.Join(folder, filename)
	full, ok := s.resolve(rel)
	if !ok {
		return "", fmt.Errorf("invalid upload path %q", rel)
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", fmt.Errorf("create folder %s: %w", folder, err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", rel, err)
	}

	return s.urlPrefix + "/" + rel, nil
}

func (s *LocalStorage) Delete(ctx context.Context, ref string) error {
	rel, ok := strings.CutPrefix(ref, s.urlPrefix+"/")
	if !ok {
		return nil
	}

	full, ok := s.resolve(rel)
	if !ok {
		return nil
	}

	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", rel, err)
	}
	return nil
}

// resolve maps a slash path under root, refusing anything that escapes it.
func (s *LocalStorage) resolve(rel string) (string, bool) {
	clean := path.Clean("/" + rel)
	if clean == "/" {
		return "", false
	}

	full := filepath.Join(s.root, filepath.FromSlash(clean))
	inside, err := filepath.Rel(s.root, full)
	if err != nil || inside == "." || strings.HasPrefix(inside, "..") {
		return "", false
	}
	return full, true
}
