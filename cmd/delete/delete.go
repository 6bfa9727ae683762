// file: cmd/delete/delete.go

package delete

import (
	"fmt"
	"os"
	"strings"

	"github.com/tch80/decb/pkg/decb"
)

// DeleteOptions configures the deletion operation.
type DeleteOptions struct {
	Force bool // Skip confirmation
	Quiet bool
}

// DefaultDeleteOptions returns default options for Delete.
func DefaultDeleteOptions() *DeleteOptions {
	return &DeleteOptions{}
}

// Delete removes a file from the disk image.
func Delete(imagePath, filename string, opts *DeleteOptions) error {
	if opts == nil {
		opts = DefaultDeleteOptions()
	}

	filename = strings.ToUpper(strings.TrimSpace(filename))
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if _, err := os.Stat(imagePath); os.IsNotExist(err) {
		return fmt.Errorf("disk image does not exist: %w", err)
	}

	if !opts.Force {
		fmt.Printf("Delete %s? (y/N) ", filename)
		var response string
		fmt.Scanln(&response)
		if !strings.HasPrefix(strings.ToLower(response), "y") {
			if !opts.Quiet {
				fmt.Println("Deletion cancelled")
			}
			return nil
		}
	}

	vol, err := decb.MountFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to mount image: %w", err)
	}

	if err := vol.Delete(filename); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	if err := vol.Save(imagePath); err != nil {
		return fmt.Errorf("failed to save disk: %w", err)
	}

	if !opts.Quiet {
		fmt.Printf("Deleted %s\n", filename)
	}
	return nil
}
