package starkengine

import (
	"github.com/vybium/starkengine/internal/starkengine/core"
	"github.com/vybium/starkengine/internal/starkengine/protocols"
	"github.com/vybium/starkengine/internal/starkengine/utils"
)

// Type aliases re-exporting the engine's public surface as thin aliases
// over the internal implementation types.
type (
	// Fe is a field element of the BLS12-381 scalar field.
	Fe = core.Fe
	// Row maps a column name to a field-encodable integer.
	Row = core.Row
	// Trace is the execution trace T.
	Trace = core.Trace
	// Polynomial is a dense univariate polynomial over Fe.
	Polynomial = core.Polynomial
	// MerkleTree is a binary SHA-256 Merkle tree.
	MerkleTree = core.MerkleTree
	// MerkleProofNode is one step of a Merkle inclusion path.
	MerkleProofNode = core.ProofNode

	// ConstraintSystem is the registry of transition and boundary
	// constraints.
	ConstraintSystem = protocols.ConstraintSystem
	// TransitionFunc evaluates a transition constraint over two
	// consecutive rows.
	TransitionFunc = protocols.TransitionFunc
	// BoundaryFunc evaluates a boundary constraint over a single row.
	BoundaryFunc = protocols.BoundaryFunc
	// Proof is the STARK proof object.
	Proof = protocols.Proof
	// ChallengeSource is the injectable randomness source for FRI
	// challenges and verifier query indices.
	ChallengeSource = protocols.ChallengeSource
	// Transcript is the default Fiat-Shamir ChallengeSource.
	Transcript = protocols.Transcript

	// Config holds the engine's tunable parameters.
	Config = utils.Config
)

// ZeroFe returns the additive identity of Fe.
func ZeroFe() Fe { return core.Zero() }

// OneFe returns the multiplicative identity of Fe.
func OneFe() Fe { return core.One() }

// NewFeFromUint64 builds a field element from a small non-negative
// integer.
func NewFeFromUint64(v uint64) Fe { return core.NewFeFromUint64(v) }

// NewFeFromInt64 builds a field element from a signed integer.
func NewFeFromInt64(v int64) Fe { return core.NewFeFromInt64(v) }

// NewTrace constructs an empty trace with fixed height H and width W.
func NewTrace(h, w int) *Trace { return core.NewTrace(h, w) }

// NewConstraintSystem returns an empty constraint system.
func NewConstraintSystem() *ConstraintSystem { return protocols.NewConstraintSystem() }

// NewTranscript seeds a fresh Fiat-Shamir transcript from label.
func NewTranscript(label string) *Transcript { return protocols.NewTranscript(label) }

// DefaultConfig returns blowup=2, verifier_queries=80,
// fri_final_layer_size=4.
func DefaultConfig() Config { return utils.DefaultConfig() }

// NewMerkleTree builds a Merkle tree over the given 32-byte leaves.
func NewMerkleTree(leaves [][32]byte) *MerkleTree { return core.NewMerkleTree(leaves) }

// VerifyMerkleProof replays a Merkle inclusion path and compares against
// root.
func VerifyMerkleProof(leaf [32]byte, path []MerkleProofNode, root [32]byte) bool {
	return core.VerifyMerkleProof(leaf, path, root)
}
