// file: pkg/decb/geometry_test.go

package decb

import "testing"

func TestDetectHeaderLength(t *testing.T) {
	cases := []struct {
		imageLength int
		want        int
	}{
		{35 * 18 * 256, 0},         // exact multiple, no header
		{35*18*256 + 5, 5},         // JVC header present
	}
	for _, c := range cases {
		if got := DetectHeaderLength(c.imageLength); got != c.want {
			t.Errorf("DetectHeaderLength(%d) = %d, want %d", c.imageLength, got, c.want)
		}
	}
}

func TestParseHeaderDefaultsOnEmptyHeader(t *testing.T) {
	g, err := ParseHeader(nil)
	if err != nil {
		t.Fatalf("ParseHeader(nil) failed: %v", err)
	}
	want := DefaultGeometry()
	if g != want {
		t.Errorf("ParseHeader(nil) = %+v, want defaults %+v", g, want)
	}
}

func TestParseHeaderOverridesFields(t *testing.T) {
	header := []byte{18, 2, 1, 1, 0xC0}
	g, err := ParseHeader(header)
	if err != nil {
		t.Fatalf("ParseHeader failed: %v", err)
	}
	if g.SectorsPerTrack != 18 || g.SideCount != 2 || g.SectorSize != 256 || g.FirstSectorID != 1 {
		t.Errorf("unexpected geometry: %+v", g)
	}
}

func TestParseHeaderRejectsBadSectorSizeCode(t *testing.T) {
	header := []byte{18, 1, 4}
	if _, err := ParseHeader(header); err == nil {
		t.Fatal("expected ParseHeader to reject a sector size code outside 0..3")
	}
}

func TestGranuleLocationSkipsDirectoryTrack(t *testing.T) {
	// Granule 33 is the last granule before the directory track hole
	// (track 16, second granule); granule 34 must land past it, on
	// track 18, not 17.
	track, _, _ := GranuleLocation(33)
	if track != 16 {
		t.Fatalf("granule 33 track = %d, want 16", track)
	}
	track, _, _ = GranuleLocation(34)
	if track != 18 {
		t.Fatalf("granule 34 track = %d, want 18 (directory track 17 must be skipped)", track)
	}
}
