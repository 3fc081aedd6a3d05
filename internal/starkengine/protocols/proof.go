package protocols

import "github.com/vybium/starkengine/internal/starkengine/core"

// Proof is the STARK proof object: a commitment to the quotient
// evaluations, bound into the proof and checked by the verifier before the
// consistency queries, plus the evaluations and FRI transcript themselves.
type Proof struct {
	// QuotientEvals is q, the Q-evaluations over the extended domain. This
	// is also the first FRI layer.
	QuotientEvals []core.Fe
	// QuotientCommitment is the Merkle root over QuotientEvals.
	QuotientCommitment [32]byte
	// FRILayers are the ordered FRI layers, layers[0] == QuotientEvals.
	FRILayers [][]core.Fe
	// FRIChallenges are the ordered per-round FRI challenges,
	// len(FRIChallenges) == len(FRILayers)-1.
	FRIChallenges []core.Fe
	// C is the combined constraint polynomial.
	C *core.Polynomial
	// Q is the quotient polynomial C/Z_H.
	Q *core.Polynomial
}

// quotientMerkleTree builds the Merkle tree committing to q's evaluations,
// one SHA-256 leaf per element.
func quotientMerkleTree(q []core.Fe) *core.MerkleTree {
	leaves := make([][32]byte, len(q))
	for i, fe := range q {
		b := fe.Bytes()
		leaves[i] = core.HashLeaf(b[:])
	}
	return core.NewMerkleTree(leaves)
}
