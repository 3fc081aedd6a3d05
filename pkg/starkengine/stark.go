package starkengine

import (
	"github.com/vybium/starkengine/internal/starkengine/protocols"
)

// Prove runs `prove(T, CS, rng) → Proof`. rng supplies the FRI challenges;
// pass a *Transcript for the standard Fiat-Shamir construction, or any
// other ChallengeSource.
func Prove(trace *Trace, cs *ConstraintSystem, cfg Config, rng ChallengeSource) (*Proof, error) {
	prover, err := protocols.NewProver(cfg)
	if err != nil {
		return nil, wrapErr(err)
	}
	proof, err := prover.Prove(trace, cs, rng)
	if err != nil {
		return nil, wrapErr(err)
	}
	return proof, nil
}

// Verify runs `verify(CS, H, proof) → bool`. rng must be seeded and
// configured identically to the rng the verifier's caller expects the
// prover to have used for its FRI challenges; consistency query indices
// are drawn from it independently of the proof's recorded FRI challenges.
func Verify(cs *ConstraintSystem, h int, proof *Proof, cfg Config, rng ChallengeSource) (bool, error) {
	verifier, err := protocols.NewVerifier(cfg)
	if err != nil {
		return false, wrapErr(err)
	}
	ok, err := verifier.Verify(cs, h, proof, rng)
	if err != nil {
		return false, wrapErr(err)
	}
	return ok, nil
}
