// file: pkg/decb/file_test.go

package decb

import (
	"io"
	"testing"
)

func TestFileCreateCloseInsertsAndOpenReads(t *testing.T) {
	vol := Format(35, DefaultSideCount, false)

	w := vol.Create("STREAM.BIN", TypeData, ModeBinary)
	if _, err := w.Write([]byte("abc")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := w.Write([]byte("def")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Close must be idempotent.
	if err := w.Close(); err != nil {
		t.Fatalf("second Close returned an error: %v", err)
	}

	r, err := vol.Open("STREAM.BIN")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	buf := make([]byte, 3)
	n, err := r.Read(buf)
	if err != nil || n != 3 || string(buf) != "abc" {
		t.Fatalf("first Read = %q, %d, %v, want \"abc\", 3, nil", buf[:n], n, err)
	}

	n, err = r.Read(buf)
	if err != nil || n != 3 || string(buf) != "def" {
		t.Fatalf("second Read = %q, %d, %v, want \"def\", 3, nil", buf[:n], n, err)
	}

	if _, err := r.Read(buf); err != io.EOF {
		t.Fatalf("Read past end = %v, want io.EOF", err)
	}
}

func TestFileSeek(t *testing.T) {
	vol := Format(35, DefaultSideCount, false)
	if err := vol.Insert("SEEK.BIN", []byte("0123456789"), TypeData, ModeBinary); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	f, err := vol.Open("SEEK.BIN")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	if _, err := f.Seek(5, io.SeekStart); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	buf := make([]byte, 2)
	if _, err := f.Read(buf); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(buf) != "56" {
		t.Errorf("read after seek = %q, want \"56\"", buf)
	}
}

func TestFileWriteOnReadOnlyFails(t *testing.T) {
	vol := Format(35, DefaultSideCount, false)
	if err := vol.Insert("RO.BIN", []byte("x"), TypeData, ModeBinary); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	f, err := vol.Open("RO.BIN")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	if _, err := f.Write([]byte("y")); err == nil {
		t.Error("expected Write to fail on a read-only file")
	}
}
