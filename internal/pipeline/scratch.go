package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/quickrecap/recap-pipeline/internal/logger"
)

// scratchDir is the private working directory of one pipeline attempt.
// It is removed on success and failure alike.
type scratchDir struct {
	dir string
}

func (p *implPipeline) newScratch(userID string) (*scratchDir, error) {
	dir := filepath.Join(p.paths.Temp, fmt.Sprintf("recap-%s-%s", userID, uuid.NewString()))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &scratchDir{dir: dir}, nil
}

func (s *scratchDir) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *scratchDir) cleanup(ctx context.Context, log logger.Logger) {
	if err := os.RemoveAll(s.dir); err != nil {
		log.Warn(ctx, "Failed to clean up scratch dir %s: %v", s.dir, err)
	} else {
		log.Debug(ctx, "Cleaned up scratch dir: %s", s.dir)
	}
}

// fileNameFromURL recovers the original upload file name from a download
// URL: percent-decoding first, then the last path segment with any query
// stripped. Path decoding keeps "+" literal, matching file names as uploaded.
func fileNameFromURL(fileURL string) (string, error) {
	decoded, err := url.PathUnescape(fileURL)
	if err != nil {
		return "", fmt.Errorf("decode %q: %w", fileURL, err)
	}

	if i := strings.Index(decoded, "?"); i >= 0 {
		decoded = decoded[:i]
	}
	if i := strings.LastIndex(decoded, "/"); i >= 0 {
		decoded = decoded[i+1:]
	}

	if decoded == "" {
		return "", fmt.Errorf("no file name in %q", fileURL)
	}
	return decoded, nil
}
