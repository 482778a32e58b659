package features

import "testing"

func TestEnabled(t *testing.T) {
	f := New(map[string]bool{Batches: true, "upscaling": false})

	if !f.Enabled(Batches) {
		t.Fatal("expected batches to be enabled")
	}
	if f.Enabled("upscaling") {
		t.Fatal("expected upscaling to be disabled")
	}
	if f.Enabled("unknown") {
		t.Fatal("unknown flags must read as disabled")
	}
}

func TestNilFlags(t *testing.T) {
	f := New(nil)
	if f.Enabled(Batches) {
		t.Fatal("nil flag map must disable everything")
	}
}
