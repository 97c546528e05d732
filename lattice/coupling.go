package lattice

// CouplingMatrix is a symmetric sparse N x N coupling matrix in diagonal
// (DIA) format. Only the upper diagonals are stored; symmetry is implied.
//
// Storage convention: diagonal d with offset k holds, at index i, the
// element (i, i+k). Entries whose column falls outside the matrix are
// ignored. Zero entries are treated as absent couplings.
//
// A CouplingMatrix is immutable after construction and safe for
// concurrent reads.
type CouplingMatrix struct {
	n       int
	offsets []int
	diags   [][]float64
}

// NewCouplingMatrix builds a matrix from its diagonals. Every diagonal
// must have exactly n entries and a positive offset smaller than n;
// len(offsets) must equal len(diags).
func NewCouplingMatrix(n int, offsets []int, diags [][]float64) (*CouplingMatrix, error) {
	if n < 1 {
		return nil, &ErrBadProblem{Reason: "spin count must be positive"}
	}
	if len(offsets) != len(diags) {
		return nil, &ErrBadProblem{Reason: "offset and diagonal counts differ"}
	}
	for d, diag := range diags {
		if len(diag) != n {
			return nil, &ErrBadProblem{Reason: "diagonal length does not match spin count"}
		}
		if offsets[d] < 1 || offsets[d] >= n {
			return nil, &ErrBadProblem{Reason: "diagonal offset out of range"}
		}
	}

	cpOffsets := make([]int, len(offsets))
	copy(cpOffsets, offsets)
	cpDiags := make([][]float64, len(diags))
	for d, diag := range diags {
		cpDiags[d] = make([]float64, n)
		copy(cpDiags[d], diag)
	}

	return &CouplingMatrix{n: n, offsets: cpOffsets, diags: cpDiags}, nil
}

// Size returns the number of lattice sites N.
func (m *CouplingMatrix) Size() int {
	return m.n
}

// NNZ returns the number of stored nonzero couplings.
func (m *CouplingMatrix) NNZ() int {
	nnz := 0
	m.EachNonZero(func(i, j int, w float64) {
		nnz++
	})
	return nnz
}

// EachNonZero calls fn once for every stored nonzero coupling (i, j, w)
// with i < j. Self couplings are skipped. Iteration order is fixed:
// diagonal by diagonal, rows ascending.
func (m *CouplingMatrix) EachNonZero(fn func(i, j int, w float64)) {
	for d, k := range m.offsets {
		diag := m.diags[d]
		for i := 0; i+k < m.n; i++ {
			w := diag[i]
			if w == 0 {
				continue
			}
			fn(i, i+k, w)
		}
	}
}

// At returns the coupling weight between sites i and j, honoring the
// implied symmetry. Duplicate stored diagonals for the same offset sum,
// matching the DIA convention. Intended for diagnostics and tests, not
// for the sweep hot loop.
func (m *CouplingMatrix) At(i, j int) float64 {
	if i == j || i < 0 || j < 0 || i >= m.n || j >= m.n {
		return 0
	}
	if i > j {
		i, j = j, i
	}
	w := 0.0
	for d, k := range m.offsets {
		if j-i == k {
			w += m.diags[d][i]
		}
	}
	return w
}
