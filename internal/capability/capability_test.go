package capability

import "testing"

func TestDefaultBuildEnablesEverything(t *testing.T) {
	for _, f := range All() {
		if !Enabled(f) {
			t.Errorf("capability %s disabled in default build", f)
		}
	}
}

func TestMaskMatchesEnabled(t *testing.T) {
	mask := Mask()
	for _, f := range All() {
		bit := mask&(1<<uint(f)) != 0
		if bit != Enabled(f) {
			t.Errorf("mask bit for %s (%v) disagrees with Enabled (%v)", f, bit, Enabled(f))
		}
	}
}
