// file: cmd/extract/extract.go

package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tch80/decb/pkg/decb"
)

// ExtractOptions configures the file extraction operation.
type ExtractOptions struct {
	OutputDir string // Directory to extract files to
	Overwrite bool   // Allow overwriting existing files
	Quiet     bool   // Suppress non-error output
}

// DefaultExtractOptions returns default options for Extract.
func DefaultExtractOptions() *ExtractOptions {
	return &ExtractOptions{}
}

// Extract copies a file from the disk image to the host filesystem.
func Extract(imagePath, filename string, opts *ExtractOptions) error {
	if opts == nil {
		opts = DefaultExtractOptions()
	}

	filename = strings.ToUpper(strings.TrimSpace(filename))
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if _, err := os.Stat(imagePath); os.IsNotExist(err) {
		return fmt.Errorf("disk image does not exist: %w", err)
	}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	outPath := filename
	if opts.OutputDir != "" {
		outPath = filepath.Join(opts.OutputDir, filename)
	}

	if !opts.Overwrite {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("output file already exists: %s (use overwrite to replace)", outPath)
		}
	}

	vol, err := decb.MountFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to mount image: %w", err)
	}

	data, err := vol.Extract(filename)
	if err != nil {
		return fmt.Errorf("failed to extract file: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if !opts.Quiet {
		fmt.Printf("Extracted %s to %s\n", filename, outPath)
	}
	return nil
}

// ExtractAll extracts every active entry from the disk image.
func ExtractAll(imagePath string, opts *ExtractOptions) error {
	if opts == nil {
		opts = DefaultExtractOptions()
	}

	if _, err := os.Stat(imagePath); os.IsNotExist(err) {
		return fmt.Errorf("disk image does not exist: %w", err)
	}

	vol, err := decb.MountFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to mount image: %w", err)
	}

	entries, err := vol.List()
	if err != nil {
		return fmt.Errorf("failed to list directory: %w", err)
	}

	for _, e := range entries {
		if err := Extract(imagePath, e.Entry.FullName(), opts); err != nil {
			return fmt.Errorf("failed to extract %s: %w", e.Entry.FullName(), err)
		}
	}

	if !opts.Quiet {
		fmt.Printf("Extracted %d files from disk image\n", len(entries))
	}
	return nil
}
