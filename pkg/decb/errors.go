// file: pkg/decb/errors.go

package decb

import (
	"errors"
	"fmt"
)

// Error taxonomy. Callers match with errors.Is against these sentinels;
// operations that can locate the fault in the image wrap one of them in a
// *FaultError carrying sector/granule/offset.
var (
	ErrInvalidImage       = errors.New("invalid image")
	ErrUnsupportedGeometry = errors.New("unsupported geometry")
	ErrFileNotFound       = errors.New("file not found")
	ErrDuplicateName      = errors.New("duplicate name")
	ErrNameInvalid        = errors.New("invalid name")
	ErrInsufficientSpace  = errors.New("insufficient space")
	ErrDirectoryFull      = errors.New("directory full")
	ErrCorruptFat         = errors.New("corrupt FAT")
	ErrCorruptDirectory   = errors.New("corrupt directory")
	ErrTruncated          = errors.New("truncated")
)

// FaultError wraps one of the sentinel errors above with enough location
// information to find the fault in the image: a sector index, a granule
// number, or a byte offset. A field holds -1 when it does not apply.
type FaultError struct {
	Err     error
	Sector  int
	Granule int
	Offset  int
	Detail  string
}

func (e *FaultError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Granule >= 0 {
		msg = fmt.Sprintf("%s (granule %d)", msg, e.Granule)
	}
	if e.Sector >= 0 {
		msg = fmt.Sprintf("%s (sector %d)", msg, e.Sector)
	}
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s (offset %d)", msg, e.Offset)
	}
	return msg
}

func (e *FaultError) Unwrap() error { return e.Err }

func fault(base error, detail string) error {
	return &FaultError{Err: base, Sector: -1, Granule: -1, Offset: -1, Detail: detail}
}

func faultAtGranule(base error, granule int, detail string) error {
	return &FaultError{Err: base, Sector: -1, Granule: granule, Offset: -1, Detail: detail}
}

func faultAtSector(base error, sector int, detail string) error {
	return &FaultError{Err: base, Sector: sector, Granule: -1, Offset: -1, Detail: detail}
}

func faultAtOffset(base error, offset int, detail string) error {
	return &FaultError{Err: base, Sector: -1, Granule: -1, Offset: offset, Detail: detail}
}
