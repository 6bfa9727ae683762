// file: pkg/decb/fat.go

package decb

import "fmt"

// FatCellKind is the tagged variant a single FAT byte decodes to. Modeling
// it as a sum type keeps every read site exhaustive instead of scattering
// 0xFF/0xC0 magic constants through the walker and allocator.
type FatCellKind int

const (
	CellFree FatCellKind = iota
	CellPointer
	CellTerminal
)

// FatCell is the decoded form of one FAT byte.
type FatCell struct {
	Kind        FatCellKind
	Next        int // valid when Kind == CellPointer
	SectorsUsed int // valid when Kind == CellTerminal, in 1..9
}

// decodeFatByte decodes a single FAT byte into its tagged cell. A value in
// 0xC0..0xC9 whose low nibble is 0 means 9 sectors used.
func decodeFatByte(b byte) (FatCell, error) {
	switch {
	case b == 0xFF:
		return FatCell{Kind: CellFree}, nil
	case b <= 0x43:
		return FatCell{Kind: CellPointer, Next: int(b)}, nil
	case b >= 0xC0 && b <= 0xC9:
		n := int(b & 0x0F)
		if n == 0 {
			n = 9
		}
		return FatCell{Kind: CellTerminal, SectorsUsed: n}, nil
	default:
		return FatCell{}, fmt.Errorf("%w: malformed FAT byte 0x%02X", ErrCorruptFat, b)
	}
}

// encodeFatByte is the inverse of decodeFatByte. A terminal cell with
// SectorsUsed == 9 encodes as 0xC9, never 0xC0, so that writers always
// produce the unambiguous form.
func encodeFatByte(c FatCell) byte {
	switch c.Kind {
	case CellPointer:
		return byte(c.Next)
	case CellTerminal:
		return 0xC0 | byte(c.SectorsUsed%10)
	default:
		return 0xFF
	}
}

// Fat is the 68-byte granule allocation table.
type Fat struct {
	cells [FatSize]byte
}

// newFatFromSector decodes the first FatSize bytes of a 256-byte FAT
// sector.
func newFatFromSector(sector []byte) *Fat {
	f := &Fat{}
	copy(f.cells[:], sector[:FatSize])
	return f
}

// freshFat returns a FAT with every granule marked free, as format()
// produces.
func freshFat() *Fat {
	f := &Fat{}
	for i := range f.cells {
		f.cells[i] = 0xFF
	}
	return f
}

// Walk follows the chain starting at head, returning the ordered granule
// list and the sectors used in the terminal granule. It hard-fails on any
// corruption: a pointer to itself, a revisited granule (cycle), a pointer
// outside 0..67/0xC0-0xC9/0xFF, a chain longer than FatSize, or a pointer
// that lands on a free entry.
func (f *Fat) Walk(head int) ([]int, int, error) {
	if head < 0 || head >= FatSize {
		return nil, 0, faultAtGranule(ErrCorruptFat, head, "head granule out of range")
	}

	visited := make(map[int]bool, FatSize)
	chain := make([]int, 0, FatSize)
	g := head

	for {
		if visited[g] {
			return nil, 0, faultAtGranule(ErrCorruptFat, g, "cycle in granule chain")
		}
		visited[g] = true
		chain = append(chain, g)
		if len(chain) > FatSize {
			return nil, 0, faultAtGranule(ErrCorruptFat, g, "chain exceeds total granule count")
		}

		cell, err := decodeFatByte(f.cells[g])
		if err != nil {
			return nil, 0, faultAtGranule(err, g, "")
		}

		switch cell.Kind {
		case CellTerminal:
			return chain, cell.SectorsUsed, nil
		case CellFree:
			return nil, 0, faultAtGranule(ErrCorruptFat, g, "chain lands on a free granule")
		case CellPointer:
			if cell.Next == g {
				return nil, 0, faultAtGranule(ErrCorruptFat, g, "granule points to itself")
			}
			g = cell.Next
		}
	}
}

// Size computes a file's byte length from its granule chain length, the
// sectors used in the terminal granule, and the directory's recorded
// last-sector byte count. lastSectorBytes is the literal count written by
// Insert (0 only for a genuinely empty file; a full terminal sector is
// recorded as 256, never 0), so no 0-means-256 promotion is needed here.
func Size(chainLen, terminalSectors, lastSectorBytes int) int {
	return (chainLen-1)*GranuleSize + (terminalSectors-1)*256 + lastSectorBytes
}

// Allocate finds count free granules using the authentic DECB search
// order: ascending from 32 through 67 first, then 0 through 31.
func (f *Fat) Allocate(count int) ([]int, error) {
	if count <= 0 {
		return nil, nil
	}

	out := make([]int, 0, count)
	scan := func(from, to int) {
		for g := from; g < to && len(out) < count; g++ {
			if f.cells[g] == 0xFF {
				out = append(out, g)
			}
		}
	}
	scan(32, FatSize)
	scan(0, 32)

	if len(out) < count {
		return nil, fmt.Errorf("%w: need %d granules, found %d free", ErrInsufficientSpace, count, len(out))
	}
	return out, nil
}

// Link writes FAT entries for an ordered allocation: each granule but the
// last points to its successor, and the last is marked terminal with
// lastSectorsUsed (1..9) sectors used.
func (f *Fat) Link(granules []int, lastSectorsUsed int) {
	for i, g := range granules {
		if i == len(granules)-1 {
			f.cells[g] = encodeFatByte(FatCell{Kind: CellTerminal, SectorsUsed: lastSectorsUsed})
		} else {
			f.cells[g] = encodeFatByte(FatCell{Kind: CellPointer, Next: granules[i+1]})
		}
	}
}

// Free walks the chain at head and marks every visited granule free.
func (f *Fat) Free(head int) error {
	chain, _, err := f.Walk(head)
	if err != nil {
		return err
	}
	for _, g := range chain {
		f.cells[g] = 0xFF
	}
	return nil
}

// FreeCount returns the number of granules currently marked free.
func (f *Fat) FreeCount() int {
	n := 0
	for _, b := range f.cells {
		if b == 0xFF {
			n++
		}
	}
	return n
}

// Serialize emits the 256-byte FAT sector: the 68 cell bytes followed by
// padding. fresh controls which padding convention applies: 0xFF on an
// initial format, 0x00 after any file-modifying write, per the authentic
// DECB convention.
func (f *Fat) Serialize(fresh bool) []byte {
	out := make([]byte, DefaultSectorSize)
	copy(out, f.cells[:])
	pad := byte(0x00)
	if fresh {
		pad = 0xFF
	}
	for i := FatSize; i < DefaultSectorSize; i++ {
		out[i] = pad
	}
	return out
}

// snapshot returns a copy of the cell bytes for shadow-copy rollback.
func (f *Fat) snapshot() [FatSize]byte {
	return f.cells
}

func (f *Fat) restore(snap [FatSize]byte) {
	f.cells = snap
}
