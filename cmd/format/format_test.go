// file: cmd/format/format_test.go

package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tch80/decb/pkg/decb"
)

func TestFormatCreatesAMountableImage(t *testing.T) {
	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "test.dsk")

	if err := Format(outPath, DefaultFormatOptions()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("output file not created: %v", err)
	}

	vol, err := decb.MountFile(outPath)
	if err != nil {
		t.Fatalf("failed to mount the formatted image: %v", err)
	}
	entries, err := vol.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("freshly formatted image has %d entries, want 0", len(entries))
	}

	nestedPath := filepath.Join(tmpDir, "sub", "nested.dsk")
	if err := Format(nestedPath, DefaultFormatOptions()); err != nil {
		t.Errorf("Format with a nested path failed: %v", err)
	}
}

func TestFormatRefusesToOverwriteWithoutForce(t *testing.T) {
	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "test.dsk")

	if err := Format(outPath, DefaultFormatOptions()); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if err := Format(outPath, DefaultFormatOptions()); err == nil {
		t.Fatal("expected a second Format without --force to fail")
	}

	opts := DefaultFormatOptions()
	opts.Force = true
	if err := Format(outPath, opts); err != nil {
		t.Errorf("Format with --force should overwrite: %v", err)
	}
}
