// Package blob reads whole file contents for analysis.
// A read is either complete or returns no data.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
)

const chunkSize = 64 * 1024

// ErrTooLarge is returned when the content exceeds the read limit.
var ErrTooLarge = errors.New("content too large")

// Read reads r until EOF. It stops with ctx.Err() when ctx is done between
// chunks and with ErrTooLarge when more than limit bytes are available.
// No data is returned on error.
func Read(ctx context.Context, r io.Reader, limit int64) ([]byte, error) {
	var b []byte
	buf := make([]byte, chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := r.Read(buf)
		if int64(len(b))+int64(n) > limit {
			return nil, fmt.Errorf("%w: more than %s", ErrTooLarge, humanize.IBytes(uint64(limit)))
		}
		b = append(b, buf[:n]...)
		if err == io.EOF {
			return b, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Open reads the file at path with Read.
func Open(ctx context.Context, path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() && fi.Size() > limit {
		return nil, fmt.Errorf("%w: %s is %s", ErrTooLarge, path, humanize.IBytes(uint64(fi.Size())))
	}
	return Read(ctx, f, limit)
}
