// file: cmd/list/list.go

package list

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tch80/decb/pkg/decb"
)

// FileEntry represents a file in the directory listing.
type FileEntry struct {
	Name        string `json:"name"`
	Size        int    `json:"size"`
	Type        string `json:"type"`
	Mode        string `json:"mode"`
	FirstGranule int   `json:"first_granule"`
}

// ListOptions configures the directory listing.
type ListOptions struct {
	JSON    bool   // Output in JSON format
	Sort    string // Sort order: name, size, type
	Reverse bool   // Reverse sort order
	Pattern string // Filter by filename pattern
	Quiet   bool   // Suppress non-error output
}

// DefaultListOptions returns default options for List.
func DefaultListOptions() *ListOptions {
	return &ListOptions{
		Sort:    "name",
		Pattern: "*",
	}
}

// List displays the contents of a DECB disk image.
func List(imagePath string, opts *ListOptions) error {
	if opts == nil {
		opts = DefaultListOptions()
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

	var files []FileEntry
	for _, e := range entries {
		name := e.Entry.FullName()
		if !matchesPattern(name, opts.Pattern) {
			continue
		}
		mode := "BIN"
		if e.Entry.Mode == decb.ModeASCII {
			mode = "ASC"
		}
		files = append(files, FileEntry{
			Name:         name,
			Size:         e.Size,
			Type:         e.Entry.Type.String(),
			Mode:         mode,
			FirstGranule: e.Entry.FirstGranule,
		})
	}

	sortFiles(files, opts)

	if opts.JSON {
		return outputJSON(files)
	}
	return outputText(imagePath, files, vol.FreeSpace(), opts)
}

func matchesPattern(name, pattern string) bool {
	if pattern == "" || pattern == "*" {
		return true
	}
	matched, err := filepath.Match(strings.ToUpper(pattern), strings.ToUpper(name))
	return err == nil && matched
}

func sortFiles(files []FileEntry, opts *ListOptions) {
	less := func(i, j int) bool {
		var result bool
		switch strings.ToLower(opts.Sort) {
		case "size":
			result = files[i].Size < files[j].Size
		case "type":
			result = files[i].Type < files[j].Type
		default:
			result = files[i].Name < files[j].Name
		}
		if opts.Reverse {
			return !result
		}
		return result
	}
	sort.Slice(files, less)
}

func outputJSON(files []FileEntry) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(files)
}

func outputText(imagePath string, files []FileEntry, freeBytes int, opts *ListOptions) error {
	if len(files) == 0 {
		if !opts.Quiet {
			fmt.Printf("Volume %s\n\nNo files\n", imagePath)
		}
		return nil
	}

	fmt.Printf("Volume %s\n\n", imagePath)
	fmt.Println("Name         Type  Mode  Granule  Bytes")
	fmt.Println("----         ----  ----  -------  -----")
	var total int
	for _, f := range files {
		fmt.Printf("%-12s %-5s %-5s %7d  %5d\n", f.Name, f.Type, f.Mode, f.FirstGranule, f.Size)
		total += f.Size
	}
	fmt.Printf("\n%d File(s)  %d bytes used  %d bytes free\n", len(files), total, freeBytes)
	return nil
}
