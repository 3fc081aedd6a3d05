package utils

import "fmt"

// Config holds the STARK engine's tunable parameters, defaulting to
// blowup=2, verifier_queries=80, fri_final_layer_size=4.
type Config struct {
	Blowup             int
	VerifierQueries    int
	FRIFinalLayerSize  int
}

// DefaultConfig returns blowup=2, verifier_queries=80,
// fri_final_layer_size=4.
func DefaultConfig() Config {
	return Config{
		Blowup:            2,
		VerifierQueries:   80,
		FRIFinalLayerSize: 4,
	}
}

// WithBlowup returns a copy of c with Blowup set.
func (c Config) WithBlowup(b int) Config {
	c.Blowup = b
	return c
}

// WithVerifierQueries returns a copy of c with VerifierQueries set.
func (c Config) WithVerifierQueries(t int) Config {
	c.VerifierQueries = t
	return c
}

// WithFRIFinalLayerSize returns a copy of c with FRIFinalLayerSize set.
func (c Config) WithFRIFinalLayerSize(l int) Config {
	c.FRIFinalLayerSize = l
	return c
}

// Validate checks that c's parameters are usable: blowup a power of two
// >= 2, a positive query count, and a positive final layer size that is
// itself a power of two (FRI halves the layer each round).
func (c Config) Validate() error {
	if !IsPowerOfTwo(c.Blowup) || c.Blowup < 2 {
		return fmt.Errorf("utils: invalid blowup %d: must be a power of two >= 2", c.Blowup)
	}
	if c.VerifierQueries <= 0 {
		return fmt.Errorf("utils: invalid verifier_queries %d: must be positive", c.VerifierQueries)
	}
	if !IsPowerOfTwo(c.FRIFinalLayerSize) {
		return fmt.Errorf("utils: invalid fri_final_layer_size %d: must be a power of two", c.FRIFinalLayerSize)
	}
	return nil
}
