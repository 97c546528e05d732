package spin

import "github.com/hupe1980/annealgo/util"

// Vector is an ordered spin configuration; index is the lattice site id
// and every value is +1 or -1.
type Vector []int8

// Random returns a vector of n uniformly random spins.
func Random(n int, rng *util.RNG) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = rng.Spin()
	}
	return v
}

// FromBits converts a bit vector to spins: bit 1 maps to +1, bit 0 to -1.
func FromBits(bits []uint8) Vector {
	v := make(Vector, len(bits))
	for i, b := range bits {
		if b == 1 {
			v[i] = 1
		} else {
			v[i] = -1
		}
	}
	return v
}

// Bits converts the vector to bits, inverting FromBits.
func (v Vector) Bits() []uint8 {
	bits := make([]uint8, len(v))
	for i, s := range v {
		if s == 1 {
			bits[i] = 1
		}
	}
	return bits
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	cp := make(Vector, len(v))
	copy(cp, v)
	return cp
}

// Flip negates the spin at site i.
func (v Vector) Flip(i int) {
	v[i] = -v[i]
}
