// file: pkg/decb/volume.go

package decb

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// State is a mounted volume's position in the {Unmounted, Mounted, Dirty,
// Saved} lifecycle. Any mutating operation moves Mounted (or Saved) to
// Dirty; Save moves Dirty to Saved.
type State int

const (
	StateUnmounted State = iota
	StateMounted
	StateDirty
	StateSaved
)

func (s State) String() string {
	switch s {
	case StateMounted:
		return "mounted"
	case StateDirty:
		return "dirty"
	case StateSaved:
		return "saved"
	default:
		return "unmounted"
	}
}

// Volume is the public facade over the geometry, sector store, FAT, and
// directory: the composition point that enforces the cross-structure
// invariants none of those four components can enforce on their own.
type Volume struct {
	store *Store
	fat   *Fat
	dir   *Directory
	state State

	// fresh marks that the FAT sector's padding (bytes 68..255) should
	// still use the initial-format convention (0xFF) rather than the
	// post-write one (0x00), until the first mutating operation flips it.
	fresh bool
}

// EntryInfo is what List() reports for one active directory entry: the
// decoded entry plus facts only the FAT can supply.
type EntryInfo struct {
	Entry       Entry
	Size        int
	ChainLength int
}

// Mount parses a raw DSK/JVC image and indexes its FAT and directory.
// Fails with ErrInvalidImage if the image is too short to contain a full
// directory track at the declared geometry.
func Mount(raw []byte) (*Volume, error) {
	store, err := LoadImage(raw)
	if err != nil {
		return nil, err
	}
	return mountStore(store)
}

// MountFile loads and mounts path.
func MountFile(path string) (*Volume, error) {
	store, err := LoadImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return mountStore(store)
}

func mountStore(store *Store) (*Volume, error) {
	minSectors := (DirTrack + 1) * store.geo.SectorsPerTrack
	if store.TotalSectors() < minSectors {
		return nil, fmt.Errorf("%w: image has %d sectors, needs at least %d to reach the directory track",
			ErrInvalidImage, store.TotalSectors(), minSectors)
	}

	fatSector, err := store.ReadSector(DirTrack, FatSector)
	if err != nil {
		return nil, err
	}
	fat := newFatFromSector(fatSector)

	dirSectors := make([][]byte, 0, DirEndSector-DirStartSector+1)
	for s := DirStartSector; s <= DirEndSector; s++ {
		sec, err := store.ReadSector(DirTrack, s)
		if err != nil {
			return nil, err
		}
		dirSectors = append(dirSectors, sec)
	}
	dir := newDirectoryFromSectors(dirSectors)

	v := &Volume{store: store, fat: fat, dir: dir, state: StateMounted}
	log.WithFields(log.Fields{"sectors": store.TotalSectors()}).Debug("mounted DECB volume")
	return v, nil
}

// Format composes a fresh image of tracks × sides × 18 × 256 bytes, with an
// optional 5-byte JVC header. Every data sector is filled with 0xFF, the
// FAT is all-free (0xFF), and the directory is entirely never-used (0xFF).
func Format(tracks, sides int, addJVCHeader bool) *Volume {
	geo := DefaultGeometry()
	geo.SideCount = sides

	var header []byte
	if addJVCHeader {
		header = []byte{byte(DefaultSectorsPerTrack), byte(sides), 1, 1, 0}
	}

	dataLen := tracks * sides * DefaultSectorsPerTrack * DefaultSectorSize
	data := make([]byte, dataLen)
	for i := range data {
		data[i] = 0xFF
	}

	store := newStore(header, data, geo)
	v := &Volume{
		store: store,
		fat:   freshFat(),
		dir:   freshDirectory(),
		state: StateMounted,
		fresh: true,
	}
	v.flushFatAndDir()
	log.WithFields(log.Fields{"tracks": tracks, "sides": sides, "header": addJVCHeader}).Info("formatted DECB volume")
	return v
}

// flushFatAndDir writes the in-memory FAT and directory back into the
// store's sectors. Every mutating operation ends by calling this.
func (v *Volume) flushFatAndDir() {
	fatSector := v.fat.Serialize(v.fresh)
	_ = v.store.WriteSector(DirTrack, FatSector, fatSector)

	for i, sec := range v.dir.Sectors() {
		_ = v.store.WriteSector(DirTrack, DirStartSector+i, sec)
	}
}

func (v *Volume) markDirty() {
	v.fresh = false
	if v.state != StateDirty {
		v.state = StateDirty
	}
}

// State reports the volume's current lifecycle state.
func (v *Volume) State() State { return v.state }

// List returns every active directory entry together with its type, mode,
// head granule, computed size, and chain length.
func (v *Volume) List() ([]EntryInfo, error) {
	var out []EntryInfo
	for _, ev := range v.dir.Entries() {
		chain, terminalSectors, err := v.fat.Walk(ev.Entry.FirstGranule)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", ev.Entry.FullName(), err)
		}
		out = append(out, EntryInfo{
			Entry:       ev.Entry,
			Size:        Size(len(chain), terminalSectors, ev.Entry.LastSectorBytes),
			ChainLength: len(chain),
		})
	}
	return out, nil
}

// FreeSpace returns the number of free bytes (free granules × GranuleSize).
func (v *Volume) FreeSpace() int {
	return v.fat.FreeCount() * GranuleSize
}

// Extract walks name's granule chain and returns its exact byte content.
func (v *Volume) Extract(name string) ([]byte, error) {
	fname, ext, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	ev, ok := v.dir.Lookup(fname, ext)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}

	chain, terminalSectors, err := v.fat.Walk(ev.Entry.FirstGranule)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(chain)*GranuleSize)
	for i, g := range chain {
		track, startSector, sectorCount := GranuleLocation(g)
		if i == len(chain)-1 {
			sectorCount = terminalSectors
		}
		for s := 0; s < sectorCount; s++ {
			sec, err := v.store.ReadSector(track, startSector+s)
			if err != nil {
				return nil, err
			}
			out = append(out, sec...)
		}
	}

	size := Size(len(chain), terminalSectors, ev.Entry.LastSectorBytes)
	if size > len(out) {
		size = len(out)
	}
	return out[:size], nil
}

// Insert allocates granules for data, writes it, links the FAT, and adds a
// directory entry for name. The whole operation is transactional: any
// failure restores the FAT and directory sectors to their pre-operation
// state before returning.
func (v *Volume) Insert(name string, data []byte, ftype FileType, mode Mode) error {
	fname, ext, err := ValidateName(name)
	if err != nil {
		return err
	}
	if _, ok := v.dir.Lookup(fname, ext); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	granuleCount := (len(data) + GranuleSize - 1) / GranuleSize
	if granuleCount == 0 {
		granuleCount = 1
	}

	snap := newShadow(v.fat)

	granules, err := v.fat.Allocate(granuleCount)
	if err != nil {
		return err
	}

	var terminalSectors int
	switch {
	case len(data) == 0:
		// Nothing to allocate within the granule; the FAT terminal cell
		// still needs a sector count, but Size must see a literal 0 here,
		// not the 9-sector "full granule" convention.
		terminalSectors = 1
	case len(data)%GranuleSize == 0:
		terminalSectors = GranuleSectors
	default:
		remainder := len(data) % GranuleSize
		terminalSectors = (remainder + DefaultSectorSize - 1) / DefaultSectorSize
	}

	lastSectorBytes := len(data) % DefaultSectorSize
	if lastSectorBytes == 0 && len(data) > 0 {
		lastSectorBytes = DefaultSectorSize
	}

	padByte := byte(0x00)
	if mode == ModeASCII {
		padByte = 0xFF
	}

	if err := v.writeGranuleChain(granules, terminalSectors, data, padByte); err != nil {
		snap.restore(v.fat, v.dir)
		return err
	}

	v.fat.Link(granules, terminalSectors)

	entry := Entry{
		Name:            fname,
		Ext:             ext,
		Type:            ftype,
		Mode:            mode,
		FirstGranule:    granules[0],
		LastSectorBytes: lastSectorBytes,
	}
	if _, err := v.dir.Insert(entry); err != nil {
		snap.restore(v.fat, v.dir)
		return err
	}

	v.markDirty()
	v.flushFatAndDir()
	log.WithFields(log.Fields{"name": entry.FullName(), "bytes": len(data), "granules": len(granules)}).Info("inserted file")
	return nil
}

func (v *Volume) writeGranuleChain(granules []int, terminalSectors int, data []byte, padByte byte) error {
	offset := 0
	for i, g := range granules {
		track, startSector, _ := GranuleLocation(g)
		sectorsHere := GranuleSectors
		if i == len(granules)-1 {
			sectorsHere = terminalSectors
		}
		for s := 0; s < sectorsHere; s++ {
			sector := make([]byte, DefaultSectorSize)
			for i := range sector {
				sector[i] = padByte
			}
			n := copy(sector, data[offset:])
			offset += n
			if err := v.store.WriteSector(track, startSector+s, sector); err != nil {
				return err
			}
		}
	}
	return nil
}

// Delete walks name's chain, frees every granule in it, and marks the
// directory entry deleted. Bytes 1..31 of the entry are left as residue,
// matching authentic DECB behavior.
func (v *Volume) Delete(name string) error {
	fname, ext, err := ValidateName(name)
	if err != nil {
		return err
	}
	ev, ok := v.dir.Lookup(fname, ext)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}

	snap := newShadow(v.fat)
	snap.captureDir(v.dir, ev.Slot/EntriesPerSector)

	if err := v.fat.Free(ev.Entry.FirstGranule); err != nil {
		snap.restore(v.fat, v.dir)
		return err
	}
	v.dir.Delete(ev.Slot)

	v.markDirty()
	v.flushFatAndDir()
	log.WithFields(log.Fields{"name": ev.Entry.FullName()}).Info("deleted file")
	return nil
}

// Rename validates newName, rejects a collision with an existing active
// entry, and mutates the directory entry in place.
func (v *Volume) Rename(oldName, newName string) error {
	oldFname, oldExt, err := ValidateName(oldName)
	if err != nil {
		return err
	}
	newFname, newExt, err := ValidateName(newName)
	if err != nil {
		return err
	}

	ev, ok := v.dir.Lookup(oldFname, oldExt)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFileNotFound, oldName)
	}
	if _, exists := v.dir.Lookup(newFname, newExt); exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, newName)
	}

	v.dir.Rename(ev.Slot, newFname, newExt)
	v.markDirty()
	v.flushFatAndDir()
	log.WithFields(log.Fields{"old": oldName, "new": newName}).Info("renamed file")
	return nil
}

// SaveBytes returns the full image (header plus sectors) for writing
// elsewhere.
func (v *Volume) SaveBytes() []byte {
	return v.store.Bytes()
}

// Save writes the volume's current image to path and moves the state
// machine from Dirty to Saved.
func (v *Volume) Save(path string) error {
	if err := v.store.Save(path); err != nil {
		return err
	}
	v.state = StateSaved
	log.WithFields(log.Fields{"path": path}).Debug("saved DECB volume")
	return nil
}
