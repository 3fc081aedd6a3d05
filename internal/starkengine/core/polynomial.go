package core

import (
	"fmt"
	"strings"
)

// Polynomial is a dense univariate polynomial over Fe, stored as an
// ascending-degree coefficient slice with trailing zeros stripped.
type Polynomial struct {
	coeffs []Fe
}

// NewPolynomial builds a polynomial from ascending-degree coefficients,
// stripping trailing zeros.
func NewPolynomial(coeffs []Fe) *Polynomial {
	last := len(coeffs) - 1
	for last >= 0 && coeffs[last].IsZero() {
		last--
	}
	if last < 0 {
		return &Polynomial{coeffs: []Fe{Zero()}}
	}
	out := make([]Fe, last+1)
	copy(out, coeffs[:last+1])
	return &Polynomial{coeffs: out}
}

// ZeroPolynomial returns the zero polynomial.
func ZeroPolynomial() *Polynomial { return NewPolynomial(nil) }

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].IsZero()
}

// Degree returns len(coeffs)-1, or 0 for the zero polynomial.
func (p *Polynomial) Degree() int {
	if p.IsZero() {
		return 0
	}
	return len(p.coeffs) - 1
}

// LeadingCoefficient returns the highest-degree coefficient, or zero for
// the zero polynomial.
func (p *Polynomial) LeadingCoefficient() Fe {
	return p.coeffs[len(p.coeffs)-1]
}

// Coefficients returns a copy of the ascending-degree coefficient slice.
func (p *Polynomial) Coefficients() []Fe {
	out := make([]Fe, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Coefficient returns the i-th coefficient, or zero if i exceeds the
// polynomial's degree.
func (p *Polynomial) Coefficient(i int) Fe {
	if i < 0 || i >= len(p.coeffs) {
		return Zero()
	}
	return p.coeffs[i]
}

// Evaluate evaluates p at x via Horner's method.
func (p *Polynomial) Evaluate(x Fe) Fe {
	acc := Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	return acc
}

// Add returns p+q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]Fe, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coefficient(i).Add(q.Coefficient(i))
	}
	return NewPolynomial(out)
}

// Sub returns p-q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]Fe, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coefficient(i).Sub(q.Coefficient(i))
	}
	return NewPolynomial(out)
}

// Mul returns p*q via schoolbook multiplication.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	if p.IsZero() || q.IsZero() {
		return ZeroPolynomial()
	}
	out := make([]Fe, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = Zero()
	}
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return NewPolynomial(out)
}

// MulScalar returns c*p.
func (p *Polynomial) MulScalar(c Fe) *Polynomial {
	out := make([]Fe, len(p.coeffs))
	for i, a := range p.coeffs {
		out[i] = a.Mul(c)
	}
	return NewPolynomial(out)
}

// Divide computes (quotient, remainder) = p / divisor by standard long
// division. Fails with ErrDivideByZero if divisor is the zero polynomial.
// Guarantees degree(remainder) < degree(divisor) and
// quotient*divisor + remainder == p exactly.
func (p *Polynomial) Divide(divisor *Polynomial) (*Polynomial, *Polynomial, error) {
	if divisor.IsZero() {
		return nil, nil, fmt.Errorf("core: polynomial division: %w", ErrDivideByZero)
	}
	if p.Degree() < divisor.Degree() && !p.IsZero() {
		return ZeroPolynomial(), NewPolynomial(p.Coefficients()), nil
	}
	remainder := p.Coefficients()
	dlead := divisor.LeadingCoefficient()
	dleadInv := dlead.Inv()
	ddeg := divisor.Degree()

	quotient := make([]Fe, 0)
	if !p.IsZero() {
		quotient = make([]Fe, p.Degree()-ddeg+1)
		for i := range quotient {
			quotient[i] = Zero()
		}
	}

	for {
		rpoly := NewPolynomial(remainder)
		if rpoly.IsZero() || rpoly.Degree() < ddeg {
			return NewPolynomial(quotient), rpoly, nil
		}
		shift := rpoly.Degree() - ddeg
		c := rpoly.LeadingCoefficient().Mul(dleadInv)
		if shift < len(quotient) {
			quotient[shift] = c
		}
		for j, dc := range divisor.coeffs {
			idx := j + shift
			remainder[idx] = remainder[idx].Sub(dc.Mul(c))
		}
	}
}

// InterpolateFromEvaluations reconstructs the coefficient form of the
// degree-<n polynomial whose evaluations over D_n (domain.Element(i) for
// i in [0,n)) are ys, via inverse NTT.
func InterpolateFromEvaluations(ys []Fe, domain *Domain) *Polynomial {
	return NewPolynomial(domain.INTT(ys))
}

// VanishingPolynomialOf returns Z_n(x) = x^n - 1 for D_n.
func VanishingPolynomialOf(domain *Domain) *Polynomial {
	return domain.Vanishing()
}

// String renders p as a sum of terms, ascending degree.
func (p *Polynomial) String() string {
	var b strings.Builder
	for i, c := range p.coeffs {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%s*x^%d", c.String(), i)
	}
	return b.String()
}
