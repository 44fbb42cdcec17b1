package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// URLPrefix is where the router serves LocalStore files.
const URLPrefix = "/uploads"

// LocalStore writes objects under a directory served by the API itself.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, publicBaseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

// Upload replaces any previous object with the same key.
func (s *LocalStore) Upload(ctx context.Context, key string, body io.Reader, _ string) (string, error) {
	if key != filepath.Base(key) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid object key %q", key)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, readerWithContext(ctx, body)); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, key)); err != nil {
		return "", err
	}

	return s.baseURL + URLPrefix + "/" + key, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
