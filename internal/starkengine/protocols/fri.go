package protocols

import (
	"fmt"

	"github.com/vybium/starkengine/internal/starkengine/core"
)

// Fold performs a single FRI folding round:
//
//	v'[i] = (v[i]+v[i+n/2])·½ + (v[i]-v[i+n/2])·½·β
//
// Fails with ErrOddLength if len(v) is odd.
func Fold(v []core.Fe, beta core.Fe) ([]core.Fe, error) {
	if len(v)%2 != 0 {
		return nil, fmt.Errorf("protocols: fri fold of length %d: %w", len(v), core.ErrOddLength)
	}
	half := len(v) / 2
	halfInv := core.Half()
	out := make([]core.Fe, half)
	for i := 0; i < half; i++ {
		a, b := v[i], v[i+half]
		sum := a.Add(b).Mul(halfInv)
		diff := a.Sub(b).Mul(halfInv).Mul(beta)
		out[i] = sum.Add(diff)
	}
	return out, nil
}

// FRIResult holds the ordered layers (including the original vector) and
// the ordered per-round challenges recorded while folding v down to at
// most lMin elements.
type FRIResult struct {
	Layers     [][]core.Fe
	Challenges []core.Fe
}

// RunFRI repeatedly folds v, drawing each round's challenge from src,
// until the layer size reaches lMin.
func RunFRI(v []core.Fe, lMin int, src ChallengeSource) (*FRIResult, error) {
	res := &FRIResult{Layers: [][]core.Fe{cloneFe(v)}}
	cur := v
	for len(cur) > lMin {
		src.Absorb(feSliceBytes(cur))
		beta := src.Challenge()
		next, err := Fold(cur, beta)
		if err != nil {
			return nil, err
		}
		res.Challenges = append(res.Challenges, beta)
		res.Layers = append(res.Layers, next)
		cur = next
	}
	return res, nil
}

// ReplayFRI folds layers[0] using each challenge in order and reports
// whether every intermediate result matches the corresponding recorded
// layer.
func ReplayFRI(layers [][]core.Fe, challenges []core.Fe) (bool, error) {
	if len(layers) == 0 {
		return false, nil
	}
	if len(challenges) != len(layers)-1 {
		return false, nil
	}
	cur := layers[0]
	for i, beta := range challenges {
		next, err := Fold(cur, beta)
		if err != nil {
			return false, err
		}
		if !feSliceEqual(next, layers[i+1]) {
			return false, nil
		}
		cur = next
	}
	return true, nil
}

func cloneFe(v []core.Fe) []core.Fe {
	out := make([]core.Fe, len(v))
	copy(out, v)
	return out
}

func feSliceEqual(a, b []core.Fe) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func feSliceBytes(v []core.Fe) []byte {
	out := make([]byte, 0, len(v)*core.FeBytes)
	for _, fe := range v {
		b := fe.Bytes()
		out = append(out, b[:]...)
	}
	return out
}
