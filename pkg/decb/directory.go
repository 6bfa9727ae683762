// file: pkg/decb/directory.go

package decb

import (
	"fmt"
	"strings"
)

// FileType is the DECB directory entry type byte.
type FileType byte

const (
	TypeBasic FileType = 0
	TypeData  FileType = 1
	TypeML    FileType = 2
	TypeText  FileType = 3
)

func (t FileType) String() string {
	switch t {
	case TypeBasic:
		return "BASIC"
	case TypeData:
		return "DATA"
	case TypeML:
		return "ML"
	case TypeText:
		return "TEXT"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", byte(t))
	}
}

// Mode is the DECB ASCII/binary flag. Type and mode are independent: there
// is no implied coupling between the two.
type Mode byte

const (
	ModeBinary Mode = 0x00
	ModeASCII  Mode = 0xFF
)

// EntryStatus is the three-state sum over a directory entry's first
// filename byte.
type EntryStatus int

const (
	StatusNeverUsed EntryStatus = iota
	StatusDeleted
	StatusActive
)

const (
	statusNeverUsedByte = 0xFF
	statusDeletedByte   = 0x00
)

// Entry is a decoded 32-byte directory entry.
type Entry struct {
	Name            string // up to 8 chars, not padded
	Ext             string // up to 3 chars, not padded
	Type            FileType
	Mode            Mode
	FirstGranule    int
	LastSectorBytes int
	Reserved        [16]byte
}

// FullName renders NAME.EXT, or just NAME when there is no extension.
func (e Entry) FullName() string {
	if e.Ext == "" {
		return e.Name
	}
	return e.Name + "." + e.Ext
}

// encode writes the entry into a 32-byte slot. reservedByte is 0x00 for an
// active entry produced by a file operation, 0xFF for a never-used entry on
// a fresh format.
func (e Entry) encode(reservedByte byte) [DirectoryEntrySize]byte {
	var buf [DirectoryEntrySize]byte
	copy(buf[0:8], padRight(e.Name, 8))
	copy(buf[8:11], padRight(e.Ext, 3))
	buf[11] = byte(e.Type)
	buf[12] = byte(e.Mode)
	buf[13] = byte(e.FirstGranule)
	buf[14] = byte(e.LastSectorBytes >> 8)
	buf[15] = byte(e.LastSectorBytes)
	for i := 16; i < 32; i++ {
		buf[i] = reservedByte
	}
	return buf
}

// decodeEntry parses a 32-byte slot and reports its status.
func decodeEntry(b []byte) (Entry, EntryStatus) {
	switch b[0] {
	case statusNeverUsedByte:
		return Entry{}, StatusNeverUsed
	case statusDeletedByte:
		return Entry{}, StatusDeleted
	}

	e := Entry{
		Name:            strings.TrimRight(string(b[0:8]), " "),
		Ext:             strings.TrimRight(string(b[8:11]), " "),
		Type:            FileType(b[11]),
		Mode:            Mode(b[12]),
		FirstGranule:    int(b[13]),
		LastSectorBytes: int(b[14])<<8 | int(b[15]),
	}
	copy(e.Reserved[:], b[16:32])
	return e, StatusActive
}

func padRight(s string, n int) string {
	s = strings.ToUpper(s)
	if len(s) >= n {
		return s[:n]
	}
	return s + strings.Repeat(" ", n-len(s))
}

// Directory holds the nine 256-byte directory sectors (sectors 3..11 of the
// directory track) in sector order.
type Directory struct {
	sectors [DirEndSector - DirStartSector + 1][DefaultSectorSize]byte
}

func freshDirectory() *Directory {
	d := &Directory{}
	for s := range d.sectors {
		for i := range d.sectors[s] {
			d.sectors[s][i] = statusNeverUsedByte
		}
	}
	return d
}

func newDirectoryFromSectors(sectors [][]byte) *Directory {
	d := &Directory{}
	for i, sec := range sectors {
		copy(d.sectors[i][:], sec)
	}
	return d
}

func (d *Directory) slot(index int) []byte {
	sector := index / EntriesPerSector
	off := (index % EntriesPerSector) * DirectoryEntrySize
	return d.sectors[sector][off : off+DirectoryEntrySize]
}

// EntryView pairs a decoded entry with its directory slot index.
type EntryView struct {
	Entry Entry
	Slot  int
}

// Entries enumerates active entries, honoring the authentic early
// termination rule: scanning stops at the first never-used entry, and
// deleted entries are skipped but do not stop the scan.
func (d *Directory) Entries() []EntryView {
	var out []EntryView
	for i := 0; i < MaxDirectoryEntries; i++ {
		e, status := decodeEntry(d.slot(i))
		switch status {
		case StatusNeverUsed:
			return out
		case StatusDeleted:
			continue
		case StatusActive:
			out = append(out, EntryView{Entry: e, Slot: i})
		}
	}
	return out
}

// Lookup finds the first active entry matching name (case-insensitive,
// DECB padding convention).
func (d *Directory) Lookup(name, ext string) (EntryView, bool) {
	name = strings.ToUpper(name)
	ext = strings.ToUpper(ext)
	for _, v := range d.Entries() {
		if v.Entry.Name == name && v.Entry.Ext == ext {
			return v, true
		}
	}
	return EntryView{}, false
}

// Insert writes e into the first slot whose first byte is 0x00 (deleted,
// reused) or 0xFF (never-used), in that scan order, and returns the slot
// index. Fails with ErrDirectoryFull if no slot is available.
func (d *Directory) Insert(e Entry) (int, error) {
	for i := 0; i < MaxDirectoryEntries; i++ {
		slot := d.slot(i)
		if slot[0] == statusDeletedByte || slot[0] == statusNeverUsedByte {
			buf := e.encode(0x00)
			copy(slot, buf[:])
			return i, nil
		}
	}
	return 0, ErrDirectoryFull
}

// Delete overwrites only the first filename byte of the slot with 0x00,
// leaving the remaining 31 bytes as residue (authentic DECB behavior).
func (d *Directory) Delete(index int) {
	d.slot(index)[0] = statusDeletedByte
}

// Rename copies the new name and extension into slot index, preserving
// type, mode, first granule, last-sector bytes, and reserved bytes.
func (d *Directory) Rename(index int, name, ext string) {
	slot := d.slot(index)
	copy(slot[0:8], padRight(name, 8))
	copy(slot[8:11], padRight(ext, 3))
}

// Sectors returns the nine directory sectors in order, as slices over the
// directory's internal storage.
func (d *Directory) Sectors() [][]byte {
	out := make([][]byte, len(d.sectors))
	for i := range d.sectors {
		out[i] = d.sectors[i][:]
	}
	return out
}

// snapshotSector copies one directory sector for shadow-copy rollback.
func (d *Directory) snapshotSector(i int) [DefaultSectorSize]byte {
	return d.sectors[i]
}

func (d *Directory) restoreSector(i int, snap [DefaultSectorSize]byte) {
	d.sectors[i] = snap
}
