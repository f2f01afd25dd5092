// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

type idVoterInfo[ID constraints.Ordered] struct {
	ID ID
	VoterInfo
}

// A (non-empty) set of voters and associated weights.
//
// A VoterSet identifies all voters that are permitted to vote in a round
// of the protocol and their associated weights. A VoterSet is furthermore
// equipped with a total order, given by the ordering of the voter's IDs.
type VoterSet[ID constraints.Ordered] struct {
	voters      []idVoterInfo[ID]
	threshold   VoterWeight
	totalWeight VoterWeight
}

// IDWeight pairs a voter ID with its weight.
type IDWeight[ID constraints.Ordered] struct {
	ID     ID
	Weight VoterWeight
}

// NewVoterSet creates a voter set from the given weight distribution.
//
// If the distribution contains multiple weights for the same voter ID,
// they are understood to be partial weights and are accumulated. As a
// result, the order of the weights is irrelevant.
//
// Returns nil if the weights do not yield a valid voter set, which is
// the case if no voter has a non-zero weight, i.e. the voter set would
// be empty, or if the total voter weight overflows.
func NewVoterSet[ID constraints.Ordered](weights []IDWeight[ID]) *VoterSet[ID] {
	var totalWeight VoterWeight
	voters := btree.NewMap[ID, VoterInfo](2)
	for _, iw := range weights {
		if iw.Weight == 0 {
			continue
		}
		if err := totalWeight.CheckedAdd(iw.Weight); err != nil {
			return nil
		}
		info, has := voters.Get(iw.ID)
		if !has {
			voters.Set(iw.ID, VoterInfo{
				position: 0, // The total order is determined afterwards.
				weight:   iw.Weight,
			})
		} else {
			info.weight = info.weight.SaturatingAdd(iw.Weight)
			voters.Set(iw.ID, info)
		}
	}

	if voters.Len() == 0 {
		return nil
	}

	orderedVoters := make([]idVoterInfo[ID], voters.Len())
	var i uint
	voters.Scan(func(id ID, info VoterInfo) bool {
		info.position = i
		orderedVoters[i] = idVoterInfo[ID]{id, info}
		i++
		return true
	})

	return &VoterSet[ID]{
		voters:      orderedVoters,
		totalWeight: totalWeight,
		threshold:   threshold(totalWeight),
	}
}

// Get returns the voter info for the voter with the given ID, if any.
func (vs VoterSet[ID]) Get(id ID) *VoterInfo {
	idx, ok := slices.BinarySearchFunc(vs.voters, idVoterInfo[ID]{ID: id},
		func(a, b idVoterInfo[ID]) int {
			switch {
			case a.ID == b.ID:
				return 0
			case a.ID > b.ID:
				return 1
			default:
				return -1
			}
		})
	if !ok {
		return nil
	}
	return &vs.voters[idx].VoterInfo
}

// Len returns the size of the set.
func (vs VoterSet[ID]) Len() int {
	return len(vs.voters)
}

// Contains returns whether the set contains a voter with the given ID.
func (vs VoterSet[ID]) Contains(id ID) bool {
	return vs.Get(id) != nil
}

// Nth returns the nth voter in the set as per the associated total
// order, or nil if n >= Len().
func (vs VoterSet[ID]) Nth(n uint) *idVoterInfo[ID] {
	if n >= uint(len(vs.voters)) {
		return nil
	}
	return &idVoterInfo[ID]{
		vs.voters[n].ID,
		vs.voters[n].VoterInfo,
	}
}

// Threshold returns the threshold vote weight required for
// supermajority w.r.t. this set of voters.
func (vs VoterSet[ID]) Threshold() VoterWeight {
	return vs.threshold
}

// TotalWeight returns the total weight of all voters.
func (vs VoterSet[ID]) TotalWeight() VoterWeight {
	return vs.totalWeight
}

// Iter returns the voters in the set, as given by the associated
// total order.
func (vs VoterSet[ID]) Iter() []idVoterInfo[ID] {
	return vs.voters
}

// VoterInfo is information about a voter in a VoterSet.
type VoterInfo struct {
	position uint
	weight   VoterWeight
}

// Weight returns the voter's weight.
func (vi VoterInfo) Weight() VoterWeight {
	return vi.weight
}

// Position returns the voter's position in the total order of the set.
func (vi VoterInfo) Position() uint {
	return vi.position
}

// threshold computes the supermajority threshold weight given the
// total voting weight: the smallest weight strictly greater than
// two thirds of the total.
func threshold(totalWeight VoterWeight) VoterWeight {
	faulty := totalWeight.SaturatingSub(1) / 3
	return totalWeight - faulty
}
