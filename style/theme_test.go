package style

import (
	"sort"
	"testing"
)

func TestSlotNamesSortedAndComplete(t *testing.T) {
	names := SlotNames()
	if len(names) != ThemeSize {
		t.Fatalf("len(SlotNames()) = %d, want %d", len(names), ThemeSize)
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("SlotNames() = %v, not sorted", names)
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			t.Errorf("SlotNames() contains duplicate %q", n)
		}
		seen[n] = true
	}
}
