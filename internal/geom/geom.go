// Package geom holds the pure track/sector/granule arithmetic shared by the
// sector store and the FAT allocator. None of it touches an image buffer.
package geom

// GranuleLocation maps a logical granule number to its starting track and
// sector, skipping the directory track. Granules are numbered so that two
// consecutive granules share a track; the directory track contributes no
// granules at all.
func GranuleLocation(granule, dirTrack, granuleSectors int) (track, startSector int) {
	if granule < dirTrack*2 {
		track = granule / 2
	} else {
		track = granule/2 + 1
	}
	startSector = 1 + granuleSectors*(granule%2)
	return track, startSector
}

// SectorOffset computes the linear byte offset of (track, sector) within the
// data area of an image, not counting any header.
func SectorOffset(sectorsPerTrack, firstSectorID, sectorSize, track, sector int) int {
	sectorNum := track*sectorsPerTrack + (sector - firstSectorID)
	return sectorNum * sectorSize
}
