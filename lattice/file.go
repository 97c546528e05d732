package lattice

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/annealgo/codec"
)

// problemFile is the diagonal-format problem layout: the spin count
// plus per-diagonal weight arrays and their offsets.
type problemFile struct {
	Spins     int         `json:"n_spins"`
	Offsets   []int       `json:"offsets"`
	Diagonals [][]float64 `json:"diagonals"`
}

// LoadFile reads a coupling matrix from a problem file. Files ending in
// ".zst" are zstd-compressed. If c is nil, codec.Default is used.
//
// A malformed file (missing diagonals or offsets, mismatched lengths)
// fails with *ErrBadProblem before any simulation state is created.
func LoadFile(path string, c codec.Codec) (*CouplingMatrix, error) {
	if c == nil {
		c = codec.Default
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open problem file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, &ErrBadProblem{Path: path, Reason: "zstd reader", cause: err}
		}
		defer dec.Close()
		r = dec
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ErrBadProblem{Path: path, Reason: "read", cause: err}
	}

	var pf problemFile
	if err := c.Unmarshal(data, &pf); err != nil {
		return nil, &ErrBadProblem{Path: path, Reason: "decode", cause: err}
	}
	if pf.Spins < 1 {
		return nil, &ErrBadProblem{Path: path, Reason: "missing or invalid spin count"}
	}
	if len(pf.Diagonals) == 0 || len(pf.Offsets) == 0 {
		return nil, &ErrBadProblem{Path: path, Reason: "missing diagonals or offsets"}
	}

	m, err := NewCouplingMatrix(pf.Spins, pf.Offsets, pf.Diagonals)
	if err != nil {
		var bad *ErrBadProblem
		if errors.As(err, &bad) {
			return nil, &ErrBadProblem{Path: path, Reason: bad.Reason, cause: err}
		}
		return nil, err
	}
	return m, nil
}

// SaveFile writes the matrix as a problem file. Files ending in ".zst"
// are zstd-compressed. If c is nil, codec.Default is used.
func SaveFile(path string, m *CouplingMatrix, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}

	data, err := c.Marshal(problemFile{
		Spins:     m.n,
		Offsets:   m.offsets,
		Diagonals: m.diags,
	})
	if err != nil {
		return fmt.Errorf("encode problem file: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create problem file: %w", err)
	}

	var w io.Writer = f
	var enc *zstd.Encoder
	if strings.HasSuffix(path, ".zst") {
		enc, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			f.Close()
			return fmt.Errorf("zstd writer: %w", err)
		}
		w = enc
	}

	if _, err := w.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write problem file: %w", err)
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			f.Close()
			return fmt.Errorf("flush problem file: %w", err)
		}
	}
	return f.Close()
}
