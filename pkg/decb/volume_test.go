// file: pkg/decb/volume_test.go

package decb

import "testing"

func TestFormatProducesEmptyMountableVolume(t *testing.T) {
	vol := Format(35, DefaultSideCount, false)

	entries, err := vol.List()
	if err != nil {
		t.Fatalf("List failed on a fresh volume: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries on a fresh volume, got %d", len(entries))
	}

	want := TotalGranules35 * GranuleSize
	if got := vol.FreeSpace(); got != want {
		t.Errorf("FreeSpace = %d, want %d", got, want)
	}

	raw := vol.SaveBytes()
	reloaded, err := Mount(raw)
	if err != nil {
		t.Fatalf("failed to remount a freshly formatted image: %v", err)
	}
	if got := reloaded.FreeSpace(); got != want {
		t.Errorf("FreeSpace after remount = %d, want %d", got, want)
	}
}

func TestMountRejectsShortImage(t *testing.T) {
	_, err := Mount(make([]byte, 512))
	if err == nil {
		t.Fatal("expected Mount to reject an image too short to reach the directory track")
	}
}

func TestInsertExtractRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"SMALL.TXT", []byte("hello, world")},
		{"EMPTY.DAT", []byte{}},
		{"GRAIN.BIN", make([]byte, GranuleSize)},               // exactly one granule
		{"MULTI.BIN", make([]byte, GranuleSize*3+100)},         // spans several granules
		{"ODDSZ.BIN", make([]byte, DefaultSectorSize*2+37)},    // partial last sector
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			vol := Format(35, DefaultSideCount, false)
			for i := range c.data {
				c.data[i] = byte(i)
			}

			if err := vol.Insert(c.name, c.data, TypeData, ModeBinary); err != nil {
				t.Fatalf("Insert failed: %v", err)
			}

			got, err := vol.Extract(c.name)
			if err != nil {
				t.Fatalf("Extract failed: %v", err)
			}
			if len(got) != len(c.data) {
				t.Fatalf("extracted %d bytes, want %d", len(got), len(c.data))
			}
			for i := range c.data {
				if got[i] != c.data[i] {
					t.Fatalf("byte %d mismatch: got 0x%02X, want 0x%02X", i, got[i], c.data[i])
				}
			}
		})
	}
}

func TestInsertRejectsDuplicateName(t *testing.T) {
	vol := Format(35, DefaultSideCount, false)
	if err := vol.Insert("ONE.BAS", []byte("10 END"), TypeBasic, ModeASCII); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if err := vol.Insert("ONE.BAS", []byte("20 END"), TypeBasic, ModeASCII); err == nil {
		t.Fatal("expected a duplicate insert to fail")
	}
}

func TestInsertFailureLeavesVolumeUnchanged(t *testing.T) {
	vol := Format(35, DefaultSideCount, false)
	before := vol.FreeSpace()

	// Ask for more space than a freshly formatted 35-track disk has.
	tooBig := make([]byte, (TotalGranules35+1)*GranuleSize)
	if err := vol.Insert("HUGE.BIN", tooBig, TypeData, ModeBinary); err == nil {
		t.Fatal("expected Insert to fail when there is not enough free space")
	}

	if after := vol.FreeSpace(); after != before {
		t.Errorf("FreeSpace changed after a failed insert: before %d, after %d", before, after)
	}
	entries, err := vol.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("a failed insert left %d directory entries behind", len(entries))
	}
}

func TestDeleteFreesGranulesAndHidesEntry(t *testing.T) {
	vol := Format(35, DefaultSideCount, false)
	data := make([]byte, GranuleSize*2)
	if err := vol.Insert("TEMP.BIN", data, TypeData, ModeBinary); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	freeBefore := vol.FreeSpace()
	if err := vol.Delete("TEMP.BIN"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := vol.Extract("TEMP.BIN"); err == nil {
		t.Fatal("expected Extract to fail after Delete")
	}

	freeAfter := vol.FreeSpace()
	if freeAfter <= freeBefore {
		t.Errorf("FreeSpace did not grow after Delete: before %d, after %d", freeBefore, freeAfter)
	}
}

func TestRenameUpdatesLookupAndRejectsCollision(t *testing.T) {
	vol := Format(35, DefaultSideCount, false)
	if err := vol.Insert("OLD.BAS", []byte("10 END"), TypeBasic, ModeASCII); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := vol.Insert("OTHER.BAS", []byte("10 END"), TypeBasic, ModeASCII); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := vol.Rename("OLD.BAS", "NEW.BAS"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if _, err := vol.Extract("OLD.BAS"); err == nil {
		t.Fatal("old name should no longer resolve after rename")
	}
	if _, err := vol.Extract("NEW.BAS"); err != nil {
		t.Fatalf("new name should resolve after rename: %v", err)
	}

	if err := vol.Rename("NEW.BAS", "OTHER.BAS"); err == nil {
		t.Fatal("expected Rename to reject a collision with an existing entry")
	}
}

func TestCheckDetectsSharedGranule(t *testing.T) {
	vol := Format(35, DefaultSideCount, false)
	if err := vol.Insert("A.BIN", make([]byte, GranuleSize), TypeData, ModeBinary); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := vol.Insert("B.BIN", make([]byte, GranuleSize), TypeData, ModeBinary); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := vol.Check(); err != nil {
		t.Fatalf("Check failed on a consistent volume: %v", err)
	}

	entries, err := vol.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	// Overwrite the first entry's head granule to collide with the
	// second's, the way a corrupted directory sector would.
	vol.dir.slot(0)[13] = byte(entries[1].Entry.FirstGranule)

	if err := vol.Check(); err == nil {
		t.Fatal("expected Check to detect the shared granule")
	}
}
