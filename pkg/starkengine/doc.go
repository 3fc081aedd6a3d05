// Package starkengine is a didactic STARK (Scalable Transparent Argument
// of Knowledge) proving engine over the BLS12-381 scalar field.
//
// Given an execution Trace and a ConstraintSystem of transition and
// boundary predicates, Prove produces a non-interactive proof that every
// row satisfies the declared transition constraints and that the
// specified rows satisfy their boundary constraints. Verify, given only
// the trace height, the constraint system and the proof, decides
// acceptance.
//
// The package does not implement a virtual machine, a constraint
// compiler, or zero-knowledge blinding: trace construction is the
// caller's job, constraints are supplied as Go closures, and the proof
// discloses the composition and quotient polynomials directly.
package starkengine
