package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalSource implements Source using the local file system.
type LocalSource struct {
	root string
}

// NewLocalSource creates a LocalSource rooted at the given directory.
func NewLocalSource(root string) *LocalSource {
	return &LocalSource{root: root}
}

// Open opens a document for reading. Not-found satisfies ErrNotFound via
// the os.PathError returned by Open.
func (s *LocalSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(filepath.Join(s.root, name))
}
