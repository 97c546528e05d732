package testutil

import (
	"testing"

	"github.com/hupe1980/annealgo/spin"
)

func TestFerromagneticPair(t *testing.T) {
	m, nbs := FerromagneticPair(t)
	if m.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", m.Size())
	}
	if e := spin.ClassicalEnergy(spin.Vector{1, 1}, m); e != -1 {
		t.Errorf("aligned energy = %f, want -1", e)
	}
	if len(nbs[0]) != 1 || nbs[0][0].Site != 1 {
		t.Errorf("unexpected neighbor index: %+v", nbs)
	}
}

func TestTorus(t *testing.T) {
	m, nbs := Torus(t, 3, 42)
	if m.Size() != 9 {
		t.Fatalf("Size() = %d, want 9", m.Size())
	}
	if len(nbs) != 9 {
		t.Fatalf("index rows = %d, want 9", len(nbs))
	}
}
