// file: pkg/decb/geometry.go

package decb

import (
	"fmt"

	"github.com/tch80/decb/internal/geom"
)

// Geometry defaults and DECB on-disk constants. These match the 35-track,
// single-sided, 256-byte-sector layout real CoCo DECB disks use.
const (
	DefaultSectorsPerTrack = 18
	DefaultSideCount       = 1
	DefaultSectorSize      = 256
	DefaultFirstSectorID   = 1

	// DirTrack is the directory track. DECB fixes it at 17 regardless of
	// disk size; this module keeps that fixed, matching coco_dsk.py rather
	// than inventing alternate-track support the source never had.
	DirTrack = 17

	GranuleSectors = 9
	GranuleSize    = GranuleSectors * DefaultSectorSize // 2304

	// TotalGranules35 is the granule count of the canonical 35-track,
	// single-sided disk (34 data tracks × 2 granules/track).
	TotalGranules35 = 68

	FatSize = TotalGranules35

	DirStartSector = 3
	DirEndSector   = 11
	FatSector      = 2
	EntriesPerSector = 8
	MaxDirectoryEntries = (DirEndSector - DirStartSector + 1) * EntriesPerSector // 72
	DirectoryEntrySize  = 32
)

// Geometry describes a disk's physical layout, derived from a JVC header
// (if present) or the DECB defaults.
type Geometry struct {
	SectorsPerTrack int
	SideCount       int
	SectorSize      int
	FirstSectorID   int
	Attribute       byte
}

// DefaultGeometry returns the standard 35-track DECB geometry.
func DefaultGeometry() Geometry {
	return Geometry{
		SectorsPerTrack: DefaultSectorsPerTrack,
		SideCount:       DefaultSideCount,
		SectorSize:      DefaultSectorSize,
		FirstSectorID:   DefaultFirstSectorID,
	}
}

// DetectHeaderLength returns the JVC header length implied by an image's
// total byte length: header_length == image_length mod sector_size, using
// the fixed 256-byte DECB sector size to recover the header before the
// header itself is available to report any other size.
func DetectHeaderLength(imageLength int) int {
	return imageLength % DefaultSectorSize
}

// ParseHeader derives a Geometry from a JVC header buffer, overriding
// defaults byte by byte as bytes are present. A sector-size code outside
// 0..3 is rejected; a first-sector-id outside 0..1 falls back to 1 rather
// than failing.
func ParseHeader(header []byte) (Geometry, error) {
	g := DefaultGeometry()

	if len(header) > 0 {
		g.SectorsPerTrack = int(header[0])
	}
	if len(header) > 1 {
		g.SideCount = int(header[1])
	}
	if len(header) > 2 {
		code := header[2]
		if code > 3 {
			return Geometry{}, fmt.Errorf("%w: sector size code 0x%02X out of range 0..3", ErrUnsupportedGeometry, code)
		}
		g.SectorSize = 128 << code
	}
	if len(header) > 3 {
		id := header[3]
		if id > 1 {
			id = 1
		}
		if id == 0 {
			id = 1
		}
		g.FirstSectorID = int(id)
	}
	if len(header) > 4 {
		g.Attribute = header[4]
	}
	return g, nil
}

// SectorOffset computes the byte offset of (track, sector) within an image,
// including the header.
func (g Geometry) SectorOffset(headerLength, track, sector int) int {
	return headerLength + geom.SectorOffset(g.SectorsPerTrack, g.FirstSectorID, g.SectorSize, track, sector)
}

// GranuleLocation maps a granule number to its starting track and sector,
// applying the directory-track hole.
func GranuleLocation(granule int) (track, startSector, sectorCount int) {
	t, s := geom.GranuleLocation(granule, DirTrack, GranuleSectors)
	return t, s, GranuleSectors
}
