// file: pkg/decb/shadow.go

package decb

// shadow is a pre-operation snapshot of the FAT and of whichever directory
// sector(s) a mutating operation is about to touch. On failure the caller
// restores from it before returning the error to its own caller, so a
// failed insert/delete/rename never leaves the volume half-mutated.
type shadow struct {
	fat  [FatSize]byte
	dirs map[int][DefaultSectorSize]byte
}

func newShadow(fat *Fat) *shadow {
	return &shadow{
		fat:  fat.snapshot(),
		dirs: make(map[int][DefaultSectorSize]byte),
	}
}

func (s *shadow) captureDir(dir *Directory, sector int) {
	if _, ok := s.dirs[sector]; !ok {
		s.dirs[sector] = dir.snapshotSector(sector)
	}
}

func (s *shadow) restore(fat *Fat, dir *Directory) {
	fat.restore(s.fat)
	for sector, snap := range s.dirs {
		dir.restoreSector(sector, snap)
	}
}
