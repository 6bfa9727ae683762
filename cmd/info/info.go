// file: cmd/info/info.go

package info

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tch80/decb/pkg/decb"
)

// VolumeInfo represents disk information in a structured format.
type VolumeInfo struct {
	Path       string    `json:"path"`
	Files      int       `json:"files"`
	UsedSpace  int       `json:"used_space"`
	FreeSpace  int       `json:"free_space"`
	TotalSpace int       `json:"total_space"`
	Modified   time.Time `json:"modified_time,omitempty"`
	Validation []string  `json:"validation_issues,omitempty"`
}

// InfoOptions configures the information display.
type InfoOptions struct {
	JSON     bool
	Validate bool
	Quiet    bool
}

// DefaultInfoOptions returns default options for Info.
func DefaultInfoOptions() *InfoOptions {
	return &InfoOptions{Validate: true}
}

// Info displays information about a DECB disk image.
func Info(imagePath string, opts *InfoOptions) error {
	if opts == nil {
		opts = DefaultInfoOptions()
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
		return fmt.Errorf("failed to read directory: %w", err)
	}

	info := &VolumeInfo{Path: imagePath}
	for _, e := range entries {
		info.Files++
		info.UsedSpace += e.Size
	}
	info.FreeSpace = vol.FreeSpace()
	info.TotalSpace = info.UsedSpace + info.FreeSpace

	if stat, err := os.Stat(imagePath); err == nil {
		info.Modified = stat.ModTime()
	}

	if opts.Validate {
		if err := vol.Check(); err != nil {
			info.Validation = append(info.Validation, err.Error())
		}
	}

	if opts.JSON {
		return outputJSON(info)
	}
	return outputText(info, opts)
}

func outputJSON(info *VolumeInfo) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(info)
}

func outputText(info *VolumeInfo, opts *InfoOptions) error {
	if opts.Quiet && len(info.Validation) == 0 {
		return nil
	}

	fmt.Printf("Disk Image: %s\n\n", info.Path)
	fmt.Printf("Files:      %d\n", info.Files)
	fmt.Printf("Used:       %d bytes\n", info.UsedSpace)
	fmt.Printf("Free:       %d bytes\n", info.FreeSpace)
	fmt.Printf("Total:      %d bytes\n", info.TotalSpace)

	if !info.Modified.IsZero() {
		fmt.Printf("Modified:   %s\n", info.Modified.Format(time.RFC1123))
	}

	if len(info.Validation) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, warning := range info.Validation {
			fmt.Printf("- %s\n", warning)
		}
	}
	return nil
}
