// Package source provides read-only access to schema documents stored on
// the local filesystem, in memory, or in S3-compatible object storage.
//
// Implementations must be safe for concurrent use.
package source

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a schema document does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Source is an abstraction for reading schema documents by name.
type Source interface {
	// Open opens the named document for reading. The caller closes the
	// returned reader.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
