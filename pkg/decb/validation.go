// file: pkg/decb/validation.go

package decb

import (
	"fmt"
	"strings"
)

const validNameChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789$#_.-"

// ValidateName splits "NAME.EXT" into its filename (1..8 chars) and
// extension (0..3 chars), uppercases both, and checks the character set.
// A leading 0x00 or 0xFF byte is rejected outright since it would collide
// with the deleted/never-used status markers.
func ValidateName(raw string) (name, ext string, err error) {
	if len(raw) == 0 {
		return "", "", fmt.Errorf("%w: empty name", ErrNameInvalid)
	}
	if raw[0] == 0x00 || raw[0] == 0xFF {
		return "", "", fmt.Errorf("%w: name begins with a reserved status byte", ErrNameInvalid)
	}

	upper := strings.ToUpper(raw)
	parts := strings.SplitN(upper, ".", 2)
	name = parts[0]
	if len(parts) == 2 {
		ext = parts[1]
	}

	if len(name) < 1 || len(name) > 8 {
		return "", "", fmt.Errorf("%w: filename %q must be 1..8 characters", ErrNameInvalid, name)
	}
	if len(ext) > 3 {
		return "", "", fmt.Errorf("%w: extension %q must be 0..3 characters", ErrNameInvalid, ext)
	}
	if !validDECBString(name) {
		return "", "", fmt.Errorf("%w: filename %q has an invalid character", ErrNameInvalid, name)
	}
	if !validDECBString(ext) {
		return "", "", fmt.Errorf("%w: extension %q has an invalid character", ErrNameInvalid, ext)
	}
	return name, ext, nil
}

func validDECBString(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(validNameChars, r) {
			return false
		}
	}
	return true
}
