// file: cmd/rename/rename.go

package rename

import (
	"fmt"
	"os"
	"strings"

	"github.com/tch80/decb/pkg/decb"
)

// RenameOptions configures the rename operation.
type RenameOptions struct {
	Quiet bool
}

// DefaultRenameOptions returns default options for Rename.
func DefaultRenameOptions() *RenameOptions {
	return &RenameOptions{}
}

// Rename changes a directory entry's name in place.
func Rename(imagePath, oldName, newName string, opts *RenameOptions) error {
	if opts == nil {
		opts = DefaultRenameOptions()
	}

	oldName = strings.ToUpper(strings.TrimSpace(oldName))
	newName = strings.ToUpper(strings.TrimSpace(newName))

	if _, err := os.Stat(imagePath); os.IsNotExist(err) {
		return fmt.Errorf("disk image does not exist: %w", err)
	}

	vol, err := decb.MountFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to mount image: %w", err)
	}

	if err := vol.Rename(oldName, newName); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}

	if err := vol.Save(imagePath); err != nil {
		return fmt.Errorf("failed to save disk: %w", err)
	}

	if !opts.Quiet {
		fmt.Printf("Renamed %s to %s\n", oldName, newName)
	}
	return nil
}
