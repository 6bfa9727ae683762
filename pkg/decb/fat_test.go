// file: pkg/decb/fat_test.go

package decb

import "testing"

func TestDecodeFatByte(t *testing.T) {
	cases := []struct {
		name string
		b    byte
		want FatCell
	}{
		{"free", 0xFF, FatCell{Kind: CellFree}},
		{"pointer zero", 0x00, FatCell{Kind: CellPointer, Next: 0}},
		{"pointer max", 0x43, FatCell{Kind: CellPointer, Next: 0x43}},
		{"terminal one sector", 0xC1, FatCell{Kind: CellTerminal, SectorsUsed: 1}},
		{"terminal nine sectors via 0", 0xC0, FatCell{Kind: CellTerminal, SectorsUsed: 9}},
		{"terminal nine sectors via 9", 0xC9, FatCell{Kind: CellTerminal, SectorsUsed: 9}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := decodeFatByte(c.b)
			if err != nil {
				t.Fatalf("decodeFatByte(0x%02X) returned error: %v", c.b, err)
			}
			if got != c.want {
				t.Errorf("decodeFatByte(0x%02X) = %+v, want %+v", c.b, got, c.want)
			}
		})
	}
}

func TestDecodeFatByteRejectsMalformed(t *testing.T) {
	for _, b := range []byte{0x44, 0xCA, 0xFE} {
		if _, err := decodeFatByte(b); err == nil {
			t.Errorf("decodeFatByte(0x%02X) should have failed", b)
		}
	}
}

func TestEncodeFatByteNeverProducesAmbiguousZero(t *testing.T) {
	got := encodeFatByte(FatCell{Kind: CellTerminal, SectorsUsed: 9})
	if got != 0xC9 {
		t.Errorf("encodeFatByte(terminal, 9) = 0x%02X, want 0xC9", got)
	}
}

func TestFatAllocateOrderAndExhaustion(t *testing.T) {
	f := freshFat()

	got, err := f.Allocate(3)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	want := []int{32, 33, 34}
	if len(got) != len(want) {
		t.Fatalf("Allocate returned %d granules, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("granule %d: got %d, want %d", i, got[i], want[i])
		}
	}

	if _, err := f.Allocate(FatSize + 1); err == nil {
		t.Fatal("expected Allocate to fail when asking for more granules than exist")
	}
}

func TestFatLinkWalkFree(t *testing.T) {
	f := freshFat()
	granules := []int{32, 33, 34}
	f.Link(granules, 5)

	chain, terminalSectors, err := f.Walk(32)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(chain) != 3 {
		t.Fatalf("chain length = %d, want 3", len(chain))
	}
	if terminalSectors != 5 {
		t.Errorf("terminalSectors = %d, want 5", terminalSectors)
	}

	if err := f.Free(32); err != nil {
		t.Fatalf("Free failed: %v", err)
	}
	if got := f.FreeCount(); got != FatSize {
		t.Errorf("FreeCount after Free = %d, want %d", got, FatSize)
	}
}

func TestFatWalkDetectsCycle(t *testing.T) {
	f := freshFat()
	f.cells[0] = 1
	f.cells[1] = 0 // points back to 0

	if _, _, err := f.Walk(0); err == nil {
		t.Fatal("expected Walk to detect the cycle")
	}
}

func TestFatWalkRejectsLandingOnFree(t *testing.T) {
	f := freshFat()
	f.cells[0] = 1 // points at granule 1, which is still free (0xFF)

	if _, _, err := f.Walk(0); err == nil {
		t.Fatal("expected Walk to fail when a chain lands on a free granule")
	}
}

func TestSize(t *testing.T) {
	cases := []struct {
		name                         string
		chainLen, terminalSectors, lastSectorBytes int
		want                         int
	}{
		{"single granule, partial last sector", 1, 1, 100, 100},
		{"single granule, full last sector", 1, 1, 256, 256},
		{"two full granules", 2, 9, 256, 2 * GranuleSize},
		{"empty file", 1, 1, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Size(c.chainLen, c.terminalSectors, c.lastSectorBytes)
			if got != c.want {
				t.Errorf("Size(%d, %d, %d) = %d, want %d", c.chainLen, c.terminalSectors, c.lastSectorBytes, got, c.want)
			}
		})
	}
}
