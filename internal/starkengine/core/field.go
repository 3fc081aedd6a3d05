// Package core implements the field, domain, polynomial, trace and
// Merkle-tree primitives the STARK engine is built from.
package core

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// FeBytes is the canonical serialized width of a field element.
const FeBytes = fr.Bytes

// Fe is an element of the BLS12-381 scalar field. It wraps gnark-crypto's
// fr.Element so every arithmetic operation is the curve library's, not a
// hand-rolled big.Int reduction.
type Fe struct {
	v fr.Element
}

// Zero returns the additive identity.
func Zero() Fe {
	var z Fe
	z.v.SetZero()
	return z
}

// One returns the multiplicative identity.
func One() Fe {
	var o Fe
	o.v.SetOne()
	return o
}

// NewFeFromUint64 builds a field element from a small non-negative integer.
func NewFeFromUint64(v uint64) Fe {
	var f Fe
	f.v.SetUint64(v)
	return f
}

// NewFeFromInt64 builds a field element from a signed integer, reducing
// negative values mod the field order.
func NewFeFromInt64(v int64) Fe {
	var f Fe
	f.v.SetInt64(v)
	return f
}

// NewFeFromBytes interprets b as the canonical little-endian encoding of a
// field element (see FeBytes) and reduces it mod the field order.
func NewFeFromBytes(b []byte) Fe {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	var f Fe
	f.v.SetBytes(be)
	return f
}

// RandomFe draws a uniformly random field element from crypto/rand.
func RandomFe() (Fe, error) {
	var f Fe
	if _, err := f.v.SetRandom(); err != nil {
		return Fe{}, fmt.Errorf("core: sample random field element: %w", err)
	}
	return f, nil
}

// Add returns a+b.
func (a Fe) Add(b Fe) Fe {
	var r Fe
	r.v.Add(&a.v, &b.v)
	return r
}

// Sub returns a-b.
func (a Fe) Sub(b Fe) Fe {
	var r Fe
	r.v.Sub(&a.v, &b.v)
	return r
}

// Neg returns -a.
func (a Fe) Neg() Fe {
	var r Fe
	r.v.Neg(&a.v)
	return r
}

// Mul returns a*b.
func (a Fe) Mul(b Fe) Fe {
	var r Fe
	r.v.Mul(&a.v, &b.v)
	return r
}

// Square returns a*a.
func (a Fe) Square() Fe {
	var r Fe
	r.v.Square(&a.v)
	return r
}

// Inv returns the multiplicative inverse of a. Panics if a is zero; callers
// must check IsZero first where zero is a legitimate input (see
// Polynomial.Divide, which never inverts a zero leading coefficient).
func (a Fe) Inv() Fe {
	if a.IsZero() {
		panic("core: inverse of zero field element")
	}
	var r Fe
	r.v.Inverse(&a.v)
	return r
}

// Exp returns a^k for a non-negative exponent k.
func (a Fe) Exp(k uint64) Fe {
	var r Fe
	r.v.Exp(a.v, new(big.Int).SetUint64(k))
	return r
}

// Equal reports whether a and b represent the same field element.
func (a Fe) Equal(b Fe) bool {
	return a.v.Equal(&b.v)
}

// IsZero reports whether a is the additive identity.
func (a Fe) IsZero() bool {
	return a.v.IsZero()
}

// Bytes returns the canonical little-endian fixed-width encoding of a.
func (a Fe) Bytes() [FeBytes]byte {
	be := a.v.Bytes()
	var le [FeBytes]byte
	for i, c := range be {
		le[FeBytes-1-i] = c
	}
	return le
}

// String renders a in decimal.
func (a Fe) String() string {
	return a.v.String()
}

// Half returns 2^-1 in the field, used by FRI folding.
func Half() Fe {
	two := NewFeFromUint64(2)
	return two.Inv()
}
