package protocols

import (
	"fmt"

	"github.com/vybium/starkengine/internal/starkengine/core"
)

// TransitionFunc evaluates a transition constraint over two consecutive
// rows.
type TransitionFunc func(cur, next core.Row) core.Fe

// BoundaryFunc evaluates a boundary constraint over a single row.
type BoundaryFunc func(row core.Row) core.Fe

// TransitionConstraint is a named transition predicate.
type TransitionConstraint struct {
	Name string
	Vars []string
	F    TransitionFunc
}

// BoundaryConstraint is a named predicate bound to a specific row index.
type BoundaryConstraint struct {
	Name string
	Row  int
	Vars []string
	F    BoundaryFunc
}

// ConstraintSystem is the registry of transition and boundary constraints,
// built once and then queried identically by prover and verifier.
type ConstraintSystem struct {
	transitions []TransitionConstraint
	boundaries  []BoundaryConstraint
}

// NewConstraintSystem returns an empty constraint system.
func NewConstraintSystem() *ConstraintSystem {
	return &ConstraintSystem{}
}

// AddTransition registers a transition constraint.
func (cs *ConstraintSystem) AddTransition(name string, vars []string, f TransitionFunc) {
	cs.transitions = append(cs.transitions, TransitionConstraint{Name: name, Vars: vars, F: f})
}

// AddBoundary registers a boundary constraint bound to row r.
func (cs *ConstraintSystem) AddBoundary(name string, r int, vars []string, f BoundaryFunc) {
	cs.boundaries = append(cs.boundaries, BoundaryConstraint{Name: name, Row: r, Vars: vars, F: f})
}

// Transitions returns the registered transition constraints in declaration
// order.
func (cs *ConstraintSystem) Transitions() []TransitionConstraint { return cs.transitions }

// Boundaries returns the registered boundary constraints in declaration
// order.
func (cs *ConstraintSystem) Boundaries() []BoundaryConstraint { return cs.boundaries }

// Evaluate returns the flat evaluation vector: H-1 values per transition
// constraint (rows i=0..H-2), in declaration order, followed by one value
// per boundary constraint, in declaration order.
func (cs *ConstraintSystem) Evaluate(t *core.Trace) ([]core.Fe, error) {
	var out []core.Fe
	h := t.H()
	for _, tc := range cs.transitions {
		for i := 0; i < h-1; i++ {
			cur, err := t.Row(i)
			if err != nil {
				return nil, err
			}
			next, err := t.Row(i + 1)
			if err != nil {
				return nil, err
			}
			out = append(out, tc.F(cur, next))
		}
	}
	for _, bc := range cs.boundaries {
		if bc.Row < 0 || bc.Row >= h {
			return nil, fmt.Errorf("protocols: boundary %q row %d: %w", bc.Name, bc.Row, core.ErrOutOfRange)
		}
		row, err := t.Row(bc.Row)
		if err != nil {
			return nil, err
		}
		out = append(out, bc.F(row))
	}
	return out, nil
}

// IsSatisfied reports whether every evaluation is zero.
func (cs *ConstraintSystem) IsSatisfied(t *core.Trace) (bool, error) {
	vals, err := cs.Evaluate(t)
	if err != nil {
		return false, err
	}
	for _, v := range vals {
		if !v.IsZero() {
			return false, nil
		}
	}
	return true, nil
}

// InterpolateAll builds, for each registered constraint (transitions then
// boundaries, in declaration order), the authoritative length-H evaluation
// vector over D_H and interpolates it to a polynomial.
func (cs *ConstraintSystem) InterpolateAll(t *core.Trace, domain *core.Domain) ([]*core.Polynomial, error) {
	h := t.H()
	rows := make([]core.Row, h)
	for i := 0; i < h; i++ {
		row, err := t.Row(i)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}

	polys := make([]*core.Polynomial, 0, len(cs.transitions)+len(cs.boundaries))

	for _, tc := range cs.transitions {
		v := make([]core.Fe, h)
		for i := 0; i < h; i++ {
			v[i] = core.Zero()
		}
		// v[i] = f(T[i], T[i+1]) for i in [0,H-1); v[H-1] = 0. Non-cyclic:
		// the last row is never checked against a wraparound successor.
		for i := 0; i < h-1; i++ {
			v[i] = tc.F(rows[i], rows[i+1])
		}
		polys = append(polys, core.InterpolateFromEvaluations(v, domain))
	}

	for _, bc := range cs.boundaries {
		if bc.Row < 0 || bc.Row >= h {
			return nil, fmt.Errorf("protocols: boundary %q row %d: %w", bc.Name, bc.Row, core.ErrOutOfRange)
		}
		v := make([]core.Fe, h)
		for i := 0; i < h; i++ {
			v[i] = core.Zero()
		}
		v[bc.Row] = bc.F(rows[bc.Row])
		polys = append(polys, core.InterpolateFromEvaluations(v, domain))
	}

	return polys, nil
}
