package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes files below Dir/<container>/ and serves them from
// BaseURL/<container>/.
type LocalStore struct {
	dir      string
	baseURL  string
	maxBytes int64
}

func NewLocalStore(dir, baseURL string, maxBytes int64) (*LocalStore, error) {
	for _, c := range []string{ContainerMovies, ContainerActors} {
		if err := os.MkdirAll(filepath.Join(dir, c), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &LocalStore{
		dir:      dir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

func (s *LocalStore) Save(ctx context.Context, container string, file *multipart.FileHeader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !validContainer(container) {
		return "", fmt.Errorf("%w: %q", ErrInvalidContainer, container)
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return "", ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	dst := filepath.Join(s.dir, container, name)

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close file: %w", err)
	}

	return s.baseURL + "/" + container + "/" + name, nil
}

func (s *LocalStore) Delete(ctx context.Context, url, container string) error {
	if url == "" {
		return nil
	}
	if !validContainer(container) {
		return fmt.Errorf("%w: %q", ErrInvalidContainer, container)
	}
	// Only files this store handed out are touched.
	prefix := s.baseURL + "/" + container + "/"
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	name := path.Base(strings.TrimPrefix(url, prefix))
	if name == "." || name == "/" || name == ".." {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, container, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

func validContainer(c string) bool {
	return c != "" && c != "." && c != ".." && !strings.ContainsAny(c, `/\`)
}
