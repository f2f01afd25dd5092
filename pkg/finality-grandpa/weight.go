// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"errors"
	"math"
)

// ErrVoterWeightOverflow is returned when the total voter weight
// would exceed the maximum representable weight.
var ErrVoterWeightOverflow = errors.New("voter weight overflow")

// VoterWeight is the cumulative weight of one or more voters.
type VoterWeight uint64

// CheckedAdd adds the given weight to w, returning
// ErrVoterWeightOverflow if the sum does not fit.
func (w *VoterWeight) CheckedAdd(add VoterWeight) error {
	if *w > math.MaxUint64-add {
		return ErrVoterWeightOverflow
	}
	*w += add
	return nil
}

// SaturatingAdd returns the sum of w and add, capped at the
// maximum representable weight.
func (w VoterWeight) SaturatingAdd(add VoterWeight) VoterWeight {
	if w > math.MaxUint64-add {
		return math.MaxUint64
	}
	return w + add
}

// SaturatingSub returns w minus sub, floored at zero.
func (w VoterWeight) SaturatingSub(sub VoterWeight) VoterWeight {
	if sub > w {
		return 0
	}
	return w - sub
}
