// file: cmd/format/format.go

package format

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tch80/decb/pkg/decb"
)

// FormatOptions configures the blank-image creation operation.
type FormatOptions struct {
	Tracks    int  // Track count; 35 is the authentic default
	Sides     int  // 1 or 2
	JVCHeader bool // Write the optional 5-byte JVC header; off by default
	Force     bool // Overwrite an existing file
	Quiet     bool
}

// DefaultFormatOptions returns default options for Format: 35 tracks,
// single-sided, no JVC header, matching real CoCo DECB disks.
func DefaultFormatOptions() *FormatOptions {
	return &FormatOptions{Tracks: 35, Sides: decb.DefaultSideCount}
}

// Format composes a new blank DECB image and writes it to outPath.
func Format(outPath string, opts *FormatOptions) error {
	if opts == nil {
		opts = DefaultFormatOptions()
	}

	if !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("file already exists: %s (use force to overwrite)", outPath)
		}
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	vol := decb.Format(opts.Tracks, opts.Sides, opts.JVCHeader)

	if err := vol.Save(outPath); err != nil {
		if rmErr := os.Remove(outPath); rmErr != nil && !os.IsNotExist(rmErr) {
			return fmt.Errorf("failed to save disk image: %w (cleanup also failed: %v)", err, rmErr)
		}
		return fmt.Errorf("failed to save disk image: %w", err)
	}

	if !opts.Quiet {
		fmt.Printf("Formatted %d-track, %d-side DECB image: %s\n", opts.Tracks, opts.Sides, outPath)
	}
	return nil
}
