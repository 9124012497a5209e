package rsidloci

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// GSReadSeekCloser decorates a Google Storage object handle with io.Reader,
// io.Seeker and io.Closer. Derived from
// https://github.com/googleapis/google-cloud-go/issues/1124#issuecomment-419070541
//
// Seeking closes the open range reader; the next Read opens a new one at the
// requested offset.
type GSReadSeekCloser struct {
	*storage.ObjectHandle
	Context context.Context
	r       *storage.Reader
	pos     int64
}

func (s *GSReadSeekCloser) Read(buf []byte) (int, error) {
	if s.r == nil {
		r, err := s.NewRangeReader(s.Context, s.pos, -1)
		if err != nil {
			return 0, err
		}
		s.r = r
	}

	n, err := s.r.Read(buf)
	s.pos += int64(n)

	return n, err
}

func (s *GSReadSeekCloser) Seek(offset int64, whence int) (int64, error) {
	var newPos int64

	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = s.pos + offset
	default:
		return 0, fmt.Errorf("io.Seeker 'whence' value %d is not implemented", whence)
	}

	if newPos < 0 {
		return 0, fmt.Errorf("cannot seek to negative offset %d", newPos)
	}

	if err := s.Close(); err != nil {
		return 0, err
	}
	s.pos = newPos

	return s.pos, nil
}

// Close releases the current range reader, if any. The handle stays usable.
func (s *GSReadSeekCloser) Close() error {
	if s.r == nil {
		return nil
	}

	err := s.r.Close()
	s.r = nil

	return err
}

// OpenSource opens path for reading. Paths beginning with gs:// are read
// from Google Storage, which requires a non-nil client; anything else is
// treated as a local file, with ~/ expanded.
func OpenSource(ctx context.Context, path string, client *storage.Client) (ReadSeekCloser, error) {
	if strings.HasPrefix(path, "gs://") {
		if client == nil {
			return nil, fmt.Errorf("%s: a Google Storage client is required for gs:// paths", path)
		}

		// Detect the bucket and the path to the actual file
		pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
		if len(pathParts) != 2 || pathParts[1] == "" {
			return nil, fmt.Errorf("Tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
		}

		handle := client.Bucket(pathParts[0]).Object(pathParts[1])

		// Make a hard call so a missing object fails here rather than on the
		// first read
		if _, err := handle.Attrs(ctx); err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
		}

		return &GSReadSeekCloser{
			ObjectHandle: handle,
			Context:      ctx,
		}, nil
	}

	local, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(local)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}
