// file: pkg/decb/store.go

package decb

import (
	"fmt"
	"os"
)

// Store owns the image's header and sector bytes. It has no concurrency
// guarantees: a Store is exclusively owned by the Volume that mounted it,
// and every call mutates the in-memory buffer directly. Nothing is
// persisted until Save is called.
type Store struct {
	header []byte
	data   []byte
	geo    Geometry
}

// newStore wraps an already-validated header/data pair.
func newStore(header, data []byte, g Geometry) *Store {
	return &Store{header: header, data: data, geo: g}
}

// LoadImage parses a raw DSK/JVC byte buffer: detects the header length,
// parses the geometry it encodes, and wraps the remaining bytes as the
// sector area.
func LoadImage(raw []byte) (*Store, error) {
	headerLen := DetectHeaderLength(len(raw))
	if headerLen > len(raw) {
		return nil, faultAtOffset(ErrInvalidImage, len(raw), "image shorter than its own header")
	}

	header := raw[:headerLen]
	g, err := ParseHeader(header)
	if err != nil {
		return nil, err
	}

	data := raw[headerLen:]
	if len(data)%g.SectorSize != 0 {
		return nil, fault(ErrInvalidImage, "sector area is not a multiple of the sector size")
	}

	return newStore(header, data, g), nil
}

// LoadImageFromFile reads path and parses it as a DSK/JVC image.
func LoadImageFromFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return LoadImage(raw)
}

// ReadSector returns a copy of the bytes at (track, sector). The caller may
// freely mutate the returned slice; it never aliases the store's buffer.
func (s *Store) ReadSector(track, sector int) ([]byte, error) {
	// s.data already excludes the header (LoadImage split it off), so the
	// offset here must be computed with no header length of its own.
	off := s.geo.SectorOffset(0, track, sector)
	if off < 0 || off+s.geo.SectorSize > len(s.data) {
		return nil, faultAtSector(ErrInvalidImage, s.linearSector(track, sector),
			fmt.Sprintf("track %d sector %d is outside the image", track, sector))
	}
	out := make([]byte, s.geo.SectorSize)
	copy(out, s.data[off:off+s.geo.SectorSize])
	return out, nil
}

// WriteSector overwrites the bytes at (track, sector) with data, which must
// be exactly one sector in length.
func (s *Store) WriteSector(track, sector int, data []byte) error {
	if len(data) != s.geo.SectorSize {
		return fmt.Errorf("%w: sector data must be %d bytes, got %d", ErrInvalidImage, s.geo.SectorSize, len(data))
	}
	off := s.geo.SectorOffset(0, track, sector)
	if off < 0 || off+s.geo.SectorSize > len(s.data) {
		return faultAtSector(ErrInvalidImage, s.linearSector(track, sector),
			fmt.Sprintf("track %d sector %d is outside the image", track, sector))
	}
	copy(s.data[off:off+s.geo.SectorSize], data)
	return nil
}

func (s *Store) linearSector(track, sector int) int {
	return track*s.geo.SectorsPerTrack + (sector - s.geo.FirstSectorID)
}

// Bytes returns the full image (header followed by the sector area) as a
// single buffer, suitable for writing to a file.
func (s *Store) Bytes() []byte {
	out := make([]byte, 0, len(s.header)+len(s.data))
	out = append(out, s.header...)
	out = append(out, s.data...)
	return out
}

// Save writes the store's current bytes to path.
func (s *Store) Save(path string) error {
	return os.WriteFile(path, s.Bytes(), 0o644)
}

// TotalSectors returns the number of addressable sectors in the data area.
func (s *Store) TotalSectors() int {
	return len(s.data) / s.geo.SectorSize
}
