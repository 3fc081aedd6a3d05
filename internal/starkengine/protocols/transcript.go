// Package protocols implements the constraint system, FRI engine and
// STARK prover/verifier that sit on top of internal/starkengine/core.
package protocols

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/starkengine/internal/starkengine/core"
)

// ChallengeSource is an injectable randomness source used in place of a
// process-wide RNG: prover and verifier must derive identical challenges
// from identical state.
type ChallengeSource interface {
	// Absorb folds data into the transcript state.
	Absorb(data []byte)
	// Challenge squeezes the next field-element challenge.
	Challenge() core.Fe
	// Index squeezes the next challenge reduced into [0, bound).
	Index(bound int) int
}

// Transcript is a Fiat-Shamir transcript seeded by a cryptographic hash
// over every previously absorbed commitment.
type Transcript struct {
	state   []byte
	counter uint64
}

// NewTranscript seeds a fresh transcript from a label, so independent
// proofs (or the prover and a verifier reproducing its steps) start from
// the same initial state.
func NewTranscript(label string) *Transcript {
	h := sha3.Sum256([]byte(label))
	return &Transcript{state: h[:]}
}

// Absorb folds data into the transcript by re-hashing state||data.
func (t *Transcript) Absorb(data []byte) {
	h := sha3.New256()
	h.Write(t.state)
	h.Write(data)
	t.state = h.Sum(nil)
	t.counter = 0
}

// Challenge squeezes a field element. Repeated calls without an
// intervening Absorb produce a fresh, deterministic value each time by
// mixing in an internal counter.
func (t *Transcript) Challenge() core.Fe {
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], t.counter)
	t.counter++

	h := sha3.New256()
	h.Write(t.state)
	h.Write(ctr[:])
	digest := h.Sum(nil)
	return core.NewFeFromBytes(digest)
}

// Index squeezes a challenge reduced into [0, bound).
func (t *Transcript) Index(bound int) int {
	if bound <= 0 {
		return 0
	}
	fe := t.Challenge()
	b := fe.Bytes()
	n := new(big.Int).SetBytes(reverse(b[:]))
	return int(new(big.Int).Mod(n, big.NewInt(int64(bound))).Int64())
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
