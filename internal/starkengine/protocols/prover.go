package protocols

import (
	"fmt"

	"github.com/vybium/starkengine/internal/starkengine/core"
	"github.com/vybium/starkengine/internal/starkengine/utils"
)

// Prover runs the STARK proving algorithm, structured as small,
// individually testable step methods.
type Prover struct {
	cfg utils.Config
}

// NewProver builds a Prover with the given configuration.
func NewProver(cfg utils.Config) (*Prover, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("protocols: new prover: %w", err)
	}
	return &Prover{cfg: cfg}, nil
}

// Prove builds a proof that trace satisfies cs. rng supplies the FRI
// challenges; prover and verifier must derive identical challenges from
// identical transcript state.
func (p *Prover) Prove(trace *core.Trace, cs *ConstraintSystem, rng ChallengeSource) (*Proof, error) {
	n := trace.H()
	m := p.cfg.Blowup * n

	dn, err := core.NewDomain(n)
	if err != nil {
		return nil, fmt.Errorf("protocols: prove: trace domain: %w", err)
	}
	dm, err := core.NewDomain(m)
	if err != nil {
		return nil, fmt.Errorf("protocols: prove: extended domain: %w", err)
	}

	c, err := p.interpolateConstraints(trace, cs, dn)
	if err != nil {
		return nil, err
	}

	cExt := p.resampleOverExtendedDomain(c, dm)

	zH := dn.Vanishing()
	q, _, err := p.computeQuotient(cExt, zH)
	if err != nil {
		return nil, err
	}
	// A non-zero remainder is not a local error. The prover emits the proof
	// anyway and lets the verifier's checks reject it.

	qEvals := p.evaluateQuotient(q, dm)

	friResult, err := p.runFRI(qEvals, rng)
	if err != nil {
		return nil, err
	}

	tree := quotientMerkleTree(qEvals)
	root, _ := tree.Root()

	return &Proof{
		QuotientEvals:       qEvals,
		QuotientCommitment:  root,
		FRILayers:           friResult.Layers,
		FRIChallenges:       friResult.Challenges,
		C:                   cExt,
		Q:                   q,
	}, nil
}

// interpolateConstraints is step 2: interpolate all constraints on D_n and
// sum into the combined constraint polynomial C(x).
func (p *Prover) interpolateConstraints(trace *core.Trace, cs *ConstraintSystem, dn *core.Domain) (*core.Polynomial, error) {
	polys, err := cs.InterpolateAll(trace, dn)
	if err != nil {
		return nil, fmt.Errorf("protocols: interpolate constraints: %w", err)
	}
	c := core.ZeroPolynomial()
	for _, poly := range polys {
		c = c.Add(poly)
	}
	return c, nil
}

// resampleOverExtendedDomain is steps 3-4: evaluate C over D_m via forward
// NTT, then inverse-NTT back to obtain C's coefficients expressed with m
// slots (exactly its zero-padded coefficient vector, since degree(C) < n
// <= m).
func (p *Prover) resampleOverExtendedDomain(c *core.Polynomial, dm *core.Domain) *core.Polynomial {
	evals := dm.NTT(c.Coefficients())
	return core.NewPolynomial(dm.INTT(evals))
}

// computeQuotient is step 5: (Q,R) = C ÷ Z_H.
func (p *Prover) computeQuotient(c, zH *core.Polynomial) (*core.Polynomial, *core.Polynomial, error) {
	q, r, err := c.Divide(zH)
	if err != nil {
		return nil, nil, fmt.Errorf("protocols: compute quotient: %w", err)
	}
	return q, r, nil
}

// evaluateQuotient is step 7: evaluate Q on D_m.
func (p *Prover) evaluateQuotient(q *core.Polynomial, dm *core.Domain) []core.Fe {
	return dm.NTT(q.Coefficients())
}

// runFRI is step 8: fold q down to the configured final layer size.
func (p *Prover) runFRI(q []core.Fe, rng ChallengeSource) (*FRIResult, error) {
	res, err := RunFRI(q, p.cfg.FRIFinalLayerSize, rng)
	if err != nil {
		return nil, fmt.Errorf("protocols: run fri: %w", err)
	}
	return res, nil
}
