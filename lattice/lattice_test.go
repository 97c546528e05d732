package lattice

import (
	"errors"
	"testing"

	"github.com/hupe1980/annealgo/util"
)

func TestNewCouplingMatrixValidation(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		offsets []int
		diags   [][]float64
	}{
		{"zero spins", 0, []int{1}, [][]float64{{}}},
		{"count mismatch", 4, []int{1, 2}, [][]float64{{0, 0, 0, 0}}},
		{"short diagonal", 4, []int{1}, [][]float64{{0, 0}}},
		{"offset too large", 4, []int{4}, [][]float64{{0, 0, 0, 0}}},
		{"offset zero", 4, []int{0}, [][]float64{{0, 0, 0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCouplingMatrix(tt.n, tt.offsets, tt.diags)
			var bad *ErrBadProblem
			if !errors.As(err, &bad) {
				t.Fatalf("expected *ErrBadProblem, got %v", err)
			}
		})
	}
}

func TestCouplingMatrixAt(t *testing.T) {
	// 3x3 with one upper diagonal at offset 1: (0,1)=0.5, (1,2)=-1.
	m, err := NewCouplingMatrix(3, []int{1}, [][]float64{{0.5, -1, 0}})
	if err != nil {
		t.Fatal(err)
	}

	if got := m.At(0, 1); got != 0.5 {
		t.Errorf("At(0,1) = %f, want 0.5", got)
	}
	if got := m.At(1, 0); got != 0.5 {
		t.Errorf("At(1,0) = %f, want 0.5 (symmetry)", got)
	}
	if got := m.At(1, 2); got != -1 {
		t.Errorf("At(1,2) = %f, want -1", got)
	}
	if got := m.At(0, 2); got != 0 {
		t.Errorf("At(0,2) = %f, want 0", got)
	}
	if got := m.At(1, 1); got != 0 {
		t.Errorf("At(1,1) = %f, want 0 (no self coupling)", got)
	}
}

func TestBuildNeighborsSymmetry(t *testing.T) {
	rng := util.NewRNG(1234)
	m, err := Generate2D(4, rng)
	if err != nil {
		t.Fatal(err)
	}

	idx := BuildNeighbors(m)
	if len(idx) != m.Size() {
		t.Fatalf("index has %d rows, want %d", len(idx), m.Size())
	}

	for i, row := range idx {
		for _, nb := range row {
			found := false
			for _, back := range idx[nb.Site] {
				if back.Site == i && back.Weight == nb.Weight {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("coupling (%d, %d, %f) has no symmetric counterpart", i, nb.Site, nb.Weight)
			}
		}
	}
}

func TestBuildNeighborsComplexity(t *testing.T) {
	// Every stored nonzero must contribute exactly two index entries.
	rng := util.NewRNG(9)
	m, err := Generate2D(5, rng)
	if err != nil {
		t.Fatal(err)
	}

	idx := BuildNeighbors(m)
	total := 0
	for _, row := range idx {
		total += len(row)
	}
	if want := 2 * m.NNZ(); total != want {
		t.Errorf("index holds %d entries, want %d", total, want)
	}
}

func TestGenerate2D(t *testing.T) {
	rng := util.NewRNG(42)
	m, err := Generate2D(4, rng)
	if err != nil {
		t.Fatal(err)
	}
	if m.Size() != 16 {
		t.Fatalf("Size() = %d, want 16", m.Size())
	}

	// Toroidal 4x4: every site couples to exactly 4 neighbors when all
	// drawn weights are nonzero (an all-but-certain event under the seed).
	idx := BuildNeighbors(m)
	for i, row := range idx {
		if len(row) != 4 {
			t.Errorf("site %d has %d neighbors, want 4", i, len(row))
		}
	}
}

func TestGenerate2DDeterminism(t *testing.T) {
	a, err := Generate2D(6, util.NewRNG(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate2D(6, util.NewRNG(7))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < a.Size(); i++ {
		for j := 0; j < a.Size(); j++ {
			if a.At(i, j) != b.At(i, j) {
				t.Fatalf("matrices diverge at (%d, %d)", i, j)
			}
		}
	}
}

func TestGenerate2DTooSmall(t *testing.T) {
	_, err := Generate2D(1, util.NewRNG(1))
	var bad *ErrBadProblem
	if !errors.As(err, &bad) {
		t.Fatalf("expected *ErrBadProblem, got %v", err)
	}
}
