package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"readme-generator/internal/domain"
)

// FileSink delivers documents by writing them into Dir under their own
// filename, replacing any existing file.
type FileSink struct {
	Dir string

	// Written holds the path of the last delivered document.
	Written string
}

func NewFileSink(dir string) *FileSink {
	if dir == "" {
		dir = "."
	}
	return &FileSink{Dir: dir}
}

func (s *FileSink) Deliver(ctx context.Context, doc domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(s.Dir, filepath.Base(doc.Filename))
	if err := os.WriteFile(path, doc.Body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.Written = path
	return nil
}
