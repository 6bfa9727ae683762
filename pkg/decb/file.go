// file: pkg/decb/file.go

package decb

import (
	"bytes"
	"errors"
	"io"
)

// File is a streaming view over a DECB directory entry: io.Reader,
// io.ReaderAt, io.Writer, io.Seeker, and io.Closer, opened either for
// reading an existing entry or for writing a new one. Unlike the sector
// store below it, writes are buffered in memory and only committed to the
// volume's FAT and directory on Close, since DECB granule allocation is
// computed from a file's whole length rather than grown incrementally.
type File struct {
	vol      *Volume
	name     string
	ftype    FileType
	mode     Mode
	readOnly bool

	data     []byte
	writeBuf *bytes.Buffer
	position int64
	closed   bool
}

// Open returns a read-only streaming view of name's current content.
func (v *Volume) Open(name string) (*File, error) {
	data, err := v.Extract(name)
	if err != nil {
		return nil, err
	}
	return &File{vol: v, name: name, data: data, readOnly: true}, nil
}

// Create returns a write-only streaming view that will insert name with
// the given type and mode when Close is called.
func (v *Volume) Create(name string, ftype FileType, mode Mode) *File {
	return &File{vol: v, name: name, ftype: ftype, mode: mode, writeBuf: &bytes.Buffer{}}
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	n, err := f.ReadAt(p, f.position)
	f.position += int64(n)
	return n, err
}

// ReadAt implements io.ReaderAt.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	if !f.readOnly {
		return 0, errors.New("decb: file opened for writing is not readable")
	}
	if off >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	if f.readOnly {
		return 0, errors.New("decb: file opened for reading is not writable")
	}
	return f.writeBuf.Write(p)
}

// Seek implements io.Seeker. Seeking is only meaningful for a file opened
// with Open; a file opened with Create is append-only until Close.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if !f.readOnly {
		return 0, errors.New("decb: cannot seek a file opened for writing")
	}
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = f.position + offset
	case io.SeekEnd:
		abs = int64(len(f.data)) + offset
	default:
		return 0, errors.New("decb: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("decb: negative position")
	}
	f.position = abs
	return abs, nil
}

// Close commits a buffered write as an Insert; for a read-only file it is
// a no-op. Close is idempotent.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if f.readOnly {
		return nil
	}
	return f.vol.Insert(f.name, f.writeBuf.Bytes(), f.ftype, f.mode)
}
