package core

import "testing"

func fes(vs ...int64) []Fe {
	out := make([]Fe, len(vs))
	for i, v := range vs {
		out[i] = NewFeFromInt64(v)
	}
	return out
}

func TestNewPolynomialStripsTrailingZeros(t *testing.T) {
	p := NewPolynomial(fes(1, 2, 3))
	q := NewPolynomial(fes(1, 2, 3, 0, 0))
	if p.Degree() != q.Degree() {
		t.Fatalf("degrees differ: %d vs %d", p.Degree(), q.Degree())
	}
	for i := 0; i <= p.Degree(); i++ {
		if !p.Coefficient(i).Equal(q.Coefficient(i)) {
			t.Errorf("coefficient %d differs", i)
		}
	}
}

func TestZeroPolynomialDegree(t *testing.T) {
	z := NewPolynomial(fes(0, 0, 0))
	if !z.IsZero() {
		t.Fatal("expected zero polynomial")
	}
	if z.Degree() != 0 {
		t.Errorf("degree(0) = %d, want 0", z.Degree())
	}
}

func TestEvaluateHorner(t *testing.T) {
	// p(x) = 1 + 2x + 3x^2
	p := NewPolynomial(fes(1, 2, 3))
	x := NewFeFromUint64(5)
	want := NewFeFromUint64(1 + 2*5 + 3*25)
	if got := p.Evaluate(x); !got.Equal(want) {
		t.Errorf("p(5) = %s, want %s", got, want)
	}
}

func TestAddMul(t *testing.T) {
	p := NewPolynomial(fes(1, 2))
	q := NewPolynomial(fes(3, 4))

	sum := p.Add(q)
	x := NewFeFromUint64(2)
	if got, want := sum.Evaluate(x), p.Evaluate(x).Add(q.Evaluate(x)); !got.Equal(want) {
		t.Errorf("(p+q)(2) = %s, want %s", got, want)
	}

	prod := p.Mul(q)
	if got, want := prod.Evaluate(x), p.Evaluate(x).Mul(q.Evaluate(x)); !got.Equal(want) {
		t.Errorf("(p*q)(2) = %s, want %s", got, want)
	}

	if got := p.Mul(ZeroPolynomial()); !got.IsZero() {
		t.Errorf("p*0 = %s, want 0", got)
	}
}

func TestDivideExact(t *testing.T) {
	// (x-1)(x+1) = x^2 - 1
	divisor := NewPolynomial(fes(-1, 0, 1))
	dividend := NewPolynomial(fes(-1, 0, 0, 0, 1)) // x^4 - 1 = (x^2-1)(x^2+1)

	q, r, err := dividend.Divide(divisor)
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}
	if !r.IsZero() {
		t.Fatalf("remainder = %s, want 0", r)
	}
	// reconstruct: q*divisor + r == dividend
	recon := q.Mul(divisor).Add(r)
	for i := 0; i <= dividend.Degree(); i++ {
		if !recon.Coefficient(i).Equal(dividend.Coefficient(i)) {
			t.Errorf("reconstruction mismatch at coefficient %d", i)
		}
	}
}

func TestDivideSmallerDegreeDividend(t *testing.T) {
	dividend := NewPolynomial(fes(5))
	divisor := NewPolynomial(fes(1, 1))

	q, r, err := dividend.Divide(divisor)
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}
	if !q.IsZero() {
		t.Errorf("quotient = %s, want 0", q)
	}
	if !r.Evaluate(Zero()).Equal(NewFeFromInt64(5)) {
		t.Errorf("remainder(0) = %s, want 5", r.Evaluate(Zero()))
	}
}

func TestDivideByZeroFails(t *testing.T) {
	dividend := NewPolynomial(fes(1, 2))
	_, _, err := dividend.Divide(ZeroPolynomial())
	if err == nil {
		t.Fatal("expected ErrDivideByZero")
	}
}

func TestInterpolateRoundTrip(t *testing.T) {
	d, err := NewDomain(8)
	if err != nil {
		t.Fatalf("NewDomain: %v", err)
	}
	p := NewPolynomial(fes(1, 2, 3, 4))
	evals := make([]Fe, d.Size())
	for i := 0; i < d.Size(); i++ {
		evals[i] = p.Evaluate(d.Element(i))
	}
	got := InterpolateFromEvaluations(evals, d)
	for i := 0; i <= p.Degree(); i++ {
		if !got.Coefficient(i).Equal(p.Coefficient(i)) {
			t.Errorf("coefficient %d = %s, want %s", i, got.Coefficient(i), p.Coefficient(i))
		}
	}
}
