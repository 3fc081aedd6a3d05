package core

import (
	"fmt"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// KMax is the largest log2 domain size this field supports a primitive
// root of unity for: the BLS12-381 scalar field's two-adicity.
const KMax = 32

// Domain is a multiplicative coset D_n of size n = 2^k generated by a
// primitive n-th root of unity. Forward/inverse NTT are delegated to
// gnark-crypto's per-curve fft.Domain.
type Domain struct {
	n  int
	fd *fft.Domain
}

// NewDomain builds D_n. n must be a power of two no larger than 2^KMax.
func NewDomain(n int) (*Domain, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("core: new domain of size %d: %w", n, ErrUnsupportedDomainSize)
	}
	k := bits.TrailingZeros(uint(n))
	if k > KMax {
		return nil, fmt.Errorf("core: new domain of size %d exceeds 2^%d: %w", n, KMax, ErrUnsupportedDomainSize)
	}
	return &Domain{n: n, fd: fft.NewDomain(uint64(n))}, nil
}

// Size returns n.
func (d *Domain) Size() int { return d.n }

// Generator returns the primitive n-th root of unity ω generating D_n.
func (d *Domain) Generator() Fe { return Fe{v: d.fd.Generator} }

// Element returns ω^i, the i-th point of the domain.
func (d *Domain) Element(i int) Fe {
	var g Fe
	g.v = d.fd.Generator
	return g.Exp(uint64(i))
}

// NTT computes the forward number-theoretic transform: coefficients of a
// polynomial of degree < n to its evaluations over D_n, in natural
// (non-bit-reversed) domain order. coeffs is zero-padded to length n.
func (d *Domain) NTT(coeffs []Fe) []Fe {
	buf := toFr(coeffs, d.n)
	d.fd.FFT(buf, fft.DIF)
	fft.BitReverse(buf)
	return fromFr(buf)
}

// INTT computes the inverse number-theoretic transform: evaluations of a
// polynomial over D_n back to its length-n coefficient vector.
func (d *Domain) INTT(values []Fe) []Fe {
	buf := toFr(values, d.n)
	fft.BitReverse(buf)
	d.fd.FFTInverse(buf, fft.DIT)
	return fromFr(buf)
}

// Vanishing returns Z_n(x) = x^n - 1, the vanishing polynomial of D_n.
func (d *Domain) Vanishing() *Polynomial {
	coeffs := make([]Fe, d.n+1)
	for i := range coeffs {
		coeffs[i] = Zero()
	}
	coeffs[0] = NewFeFromInt64(-1)
	coeffs[d.n] = One()
	return NewPolynomial(coeffs)
}

func toFr(xs []Fe, n int) []fr.Element {
	buf := make([]fr.Element, n)
	for i := range buf {
		if i < len(xs) {
			buf[i] = xs[i].v
		}
	}
	return buf
}

func fromFr(xs []fr.Element) []Fe {
	out := make([]Fe, len(xs))
	for i := range xs {
		out[i] = Fe{v: xs[i]}
	}
	return out
}
