package diffexpr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// ExpandHome expands ~ to its proper path, where appropriate.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		path = filepath.Join(usr.HomeDir, (path)[2:])
	}

	return path
}

// MaybeOpenFromGoogleStorage opens path from Google Storage when it starts
// with gs:// and a client is provided, and from the local filesystem
// otherwise. A missing file or object yields a NotFoundError.
func MaybeOpenFromGoogleStorage(path string, client *storage.Client) (ReadSeekCloser, error) {
	if client != nil && strings.HasPrefix(path, "gs://") {
		pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
		if len(pathParts) != 2 {
			return nil, fmt.Errorf("google storage path %q must name a bucket and an object", path)
		}

		handle := client.Bucket(pathParts[0]).Object(pathParts[1])
		wrapped := &GSReadSeekCloser{
			ObjectHandle: handle,
			Context:      context.Background(),
		}

		// One attributes call up front, so a bad object name fails here
		// rather than on the first read.
		if _, err := handle.Attrs(wrapped.Context); err != nil {
			if errors.Is(err, storage.ErrObjectNotExist) {
				return nil, &NotFoundError{Path: path, Err: err}
			}
			return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
		}

		return wrapped, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, pfx.Err(err)
	}

	return f, nil
}

// GSReadSeekCloser decorates a Google Storage object handle with io.Reader,
// io.Seeker, and io.Closer. Object readers cannot rewind, so seeking closes
// the open connection and reopens the object at the requested offset.
type GSReadSeekCloser struct {
	*storage.ObjectHandle
	Context context.Context
	r       *storage.Reader
	offset  int64 // where the next (re)opened reader starts
	pos     int64 // bytes consumed since the last (re)open
}

func (s *GSReadSeekCloser) Read(buf []byte) (int, error) {
	if s.r == nil {
		var err error
		s.r, err = s.NewRangeReader(s.Context, s.offset, -1)
		if err != nil {
			return 0, err
		}
	}

	n, err := s.r.Read(buf)
	s.pos += int64(n)

	return n, err
}

func (s *GSReadSeekCloser) Seek(offset int64, whence int) (int64, error) {
	var target int64

	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = s.offset + s.pos + offset
	default:
		return 0, fmt.Errorf("io.Seeker 'whence' value %d is not implemented", whence)
	}
	if target < 0 {
		return 0, fmt.Errorf("cannot seek to negative offset %d", target)
	}

	if s.r != nil {
		if err := s.r.Close(); err != nil {
			return 0, err
		}
		s.r = nil
	}

	s.offset = target
	s.pos = 0

	return target, nil
}

func (s *GSReadSeekCloser) Close() error {
	if s.r == nil {
		return nil
	}

	err := s.r.Close()
	s.r = nil

	return err
}
