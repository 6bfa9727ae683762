// file: cmd/insert/insert.go

package insert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tch80/decb/pkg/decb"
)

// TypeAuto requests extension-based type/mode detection, matching the
// host extension conventions RS-DOS toolchains use: .BAS → BASIC/ASCII,
// .BIN → ML/binary, .TXT → TEXT/ASCII, everything else → DATA/binary.
const TypeAuto = decb.FileType(255)

// InsertOptions configures the Insert operation.
type InsertOptions struct {
	Name  string         // Destination name; defaults to the host basename
	Type  decb.FileType  // TypeAuto triggers extension-based detection
	Mode  decb.Mode
	Force bool // Allow overwriting an existing entry
	Quiet bool
}

// DefaultInsertOptions returns default options for Insert.
func DefaultInsertOptions() *InsertOptions {
	return &InsertOptions{Type: TypeAuto, Mode: decb.ModeBinary}
}

// detectType infers type and mode from a host filename's extension.
func detectType(path string) (decb.FileType, decb.Mode) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bas":
		return decb.TypeBasic, decb.ModeASCII
	case ".bin":
		return decb.TypeML, decb.ModeBinary
	case ".txt":
		return decb.TypeText, decb.ModeASCII
	default:
		return decb.TypeData, decb.ModeBinary
	}
}

// Insert imports a host file into the disk image.
func Insert(imagePath, filePath string, opts *InsertOptions) error {
	if opts == nil {
		opts = DefaultInsertOptions()
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("input file does not exist: %w", err)
	}
	if info.Size() > 68*decb.GranuleSize {
		return fmt.Errorf("file too large for a 35-track DECB volume")
	}

	if _, err := os.Stat(imagePath); os.IsNotExist(err) {
		return fmt.Errorf("disk image does not exist: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	name := opts.Name
	if name == "" {
		name = filepath.Base(filePath)
	}

	ftype, mode := opts.Type, opts.Mode
	if ftype == TypeAuto {
		ftype, mode = detectType(filePath)
	}

	vol, err := decb.MountFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to mount image: %w", err)
	}

	if opts.Force {
		_ = vol.Delete(name)
	}

	if err := vol.Insert(name, data, ftype, mode); err != nil {
		return fmt.Errorf("failed to insert file: %w", err)
	}

	if err := vol.Save(imagePath); err != nil {
		return fmt.Errorf("failed to save disk: %w", err)
	}

	if !opts.Quiet {
		fmt.Printf("Inserted %s into disk image\n", name)
	}
	return nil
}
