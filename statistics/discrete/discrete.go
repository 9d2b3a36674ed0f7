// Copyright 2026 Buildstock Contributors
// This file is part of Panelsampler, an electrical panel sampler for building stock models
//
// Panelsampler is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Panelsampler is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Panelsampler. If not, see <http://www.gnu.org/licenses/>.

package discrete

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/errors"
)

//go:generate mockgen -source discrete.go -destination discrete_mock.go -package discrete

// RandomStream produces uniform random numbers in the range [0,1).
// *rand.Rand satisfies it.
type RandomStream interface {
	Float64() float64
}

// NewStream returns a fresh random stream seeded with the given identifier.
// Two streams with the same seed produce the same sequence.
func NewStream(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// CheckWeights checks that the weight vector of a categorical distribution
// is usable for a draw. Weights must be finite and non-negative; they are
// not required to sum to one.
func CheckWeights(w []float64) error {
	if len(w) == 0 {
		return errors.New("empty weight vector")
	}
	for i, x := range w {
		if x < 0.0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return errors.Newf("invalid weight (%v) at position %d", x, i)
		}
	}
	return nil
}

// Quantile returns the index of the first weight whose running sum is at
// least u. If no running sum reaches u, which happens when the weights sum
// to less than u, the last index is returned. Weights are not normalised.
// An empty weight vector yields -1.
func Quantile(w []float64, u float64) int {
	sum := 0.0
	for i, x := range w {
		sum += x
		// zero-weight outcomes are never drawn, even for u=0
		if sum > 0 && sum >= u {
			return i
		}
	}
	// weights that do not reach u select the last outcome
	return len(w) - 1
}

// Draw samples an index of the categorical distribution given by the
// weights using one uniform number taken from the stream.
func Draw(rng RandomStream, w []float64) int {
	return Quantile(w, rng.Float64())
}
