package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore implements BlobStore on a local directory tree. It serves
// development setups and tests where no bucket is available.
type LocalStore struct {
	root string
}

// NewLocalStore creates a BlobStore rooted at dir, creating it if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create blob root %s: %w", dir, err)
	}
	return &LocalStore{root: dir}, nil
}

func (s *LocalStore) Download(ctx context.Context, key, destPath string) error {
	return copyFile(filepath.Join(s.root, filepath.FromSlash(key)), destPath)
}

func (s *LocalStore) Upload(ctx context.Context, key, srcPath string) error {
	destPath := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("create blob dir: %w", err)
	}
	return copyFile(srcPath, destPath)
}

func (s *LocalStore) URI(key string) string {
	return "file://" + filepath.Join(s.root, filepath.FromSlash(key))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return nil
}

var _ BlobStore = (*LocalStore)(nil)
