// file: pkg/decb/diskcheck.go

package decb

import "fmt"

// Check runs the cross-structure invariants against the mounted volume:
// every active entry's chain walks to a terminal granule in at most
// FatSize steps, and no two active entries share a granule.
func (v *Volume) Check() error {
	seen := make(map[int]string, FatSize)

	for _, ev := range v.dir.Entries() {
		chain, _, err := v.fat.Walk(ev.Entry.FirstGranule)
		if err != nil {
			return fmt.Errorf("entry %s: %w", ev.Entry.FullName(), err)
		}
		if len(chain) > FatSize {
			return fmt.Errorf("entry %s: %w: chain longer than %d granules", ev.Entry.FullName(), ErrCorruptFat, FatSize)
		}
		for _, g := range chain {
			if owner, dup := seen[g]; dup {
				return fmt.Errorf("%w: granule %d used by both %q and %q", ErrCorruptFat, g, owner, ev.Entry.FullName())
			}
			seen[g] = ev.Entry.FullName()
		}
	}
	return nil
}
