package fs

import (
	"io"
	"os"
)

type File interface {
	io.ReadCloser
	Stat() (os.FileInfo, error)
}

func Open(path string) (File, error) {
	return os.Open(path)
}

// ReadHeader reads up to maxBytes from the start of f.
// A short read is not an error: files smaller than maxBytes
// simply yield a shorter buffer.
func ReadHeader(f File, maxBytes int) ([]byte, error) {
	buf := make([]byte, maxBytes)
	n, err := io.ReadFull(f, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	return buf[:n], err
}
