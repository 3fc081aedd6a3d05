package protocols

import (
	"fmt"

	"github.com/vybium/starkengine/internal/starkengine/core"
	"github.com/vybium/starkengine/internal/starkengine/utils"
)

// Verifier runs the STARK verification algorithm. Every check is fatal:
// the first mismatch rejects, with no partial retries.
type Verifier struct {
	cfg utils.Config
}

// NewVerifier builds a Verifier with the given configuration. cfg must
// match the configuration the proof was produced under.
func NewVerifier(cfg utils.Config) (*Verifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("protocols: new verifier: %w", err)
	}
	return &Verifier{cfg: cfg}, nil
}

// Verify checks proof against cs and trace height h, using rng to sample
// consistency-query indices and to re-derive the FRI challenges. A returned error indicates a malformed
// request (e.g. h not a power of two); any cryptographic mismatch instead
// yields (false, nil).
func (v *Verifier) Verify(cs *ConstraintSystem, h int, proof *Proof, rng ChallengeSource) (bool, error) {
	dn, err := core.NewDomain(h)
	if err != nil {
		return false, fmt.Errorf("protocols: verify: trace domain: %w", err)
	}
	m := v.cfg.Blowup * h
	dm, err := core.NewDomain(m)
	if err != nil {
		return false, fmt.Errorf("protocols: verify: extended domain: %w", err)
	}
	zH := dn.Vanishing()

	if !v.checkQuotientCommitment(proof) {
		return false, nil
	}
	if ok, err := v.checkConsistency(proof, zH, dm, rng); err != nil {
		return false, err
	} else if !ok {
		return false, nil
	}
	if !v.checkFRI(proof, rng) {
		return false, nil
	}
	return true, nil
}

// checkQuotientCommitment recomputes the Merkle root over the proof's
// disclosed quotient evaluations and compares it to the bound commitment.
func (v *Verifier) checkQuotientCommitment(proof *Proof) bool {
	tree := quotientMerkleTree(proof.QuotientEvals)
	root, ok := tree.Root()
	if !ok {
		return false
	}
	return root == proof.QuotientCommitment
}

// checkConsistency samples T random indices in [0,m) and checks
// Q(x0)*Z_H(x0) == C(x0).
func (v *Verifier) checkConsistency(proof *Proof, zH *core.Polynomial, dm *core.Domain, rng ChallengeSource) (bool, error) {
	for i := 0; i < v.cfg.VerifierQueries; i++ {
		idx := rng.Index(dm.Size())
		x0 := dm.Element(idx)
		lhs := proof.Q.Evaluate(x0).Mul(zH.Evaluate(x0))
		rhs := proof.C.Evaluate(x0)
		if !lhs.Equal(rhs) {
			return false, nil
		}
	}
	return true, nil
}

// checkFRI re-derives each FRI challenge from rng by absorbing the layer it
// folds, exactly as RunFRI does on the prover side, and rejects if any
// recorded challenge differs. It then replays every fold using the
// recorded challenges and checks each result against the recorded layer.
func (v *Verifier) checkFRI(proof *Proof, rng ChallengeSource) bool {
	if len(proof.FRIChallenges) != len(proof.FRILayers)-1 {
		return false
	}
	for i, beta := range proof.FRIChallenges {
		rng.Absorb(feSliceBytes(proof.FRILayers[i]))
		if !rng.Challenge().Equal(beta) {
			return false
		}
	}
	ok, err := ReplayFRI(proof.FRILayers, proof.FRIChallenges)
	if err != nil {
		return false
	}
	return ok
}
