// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	finalityGrandpa "github.com/ChainSafe/grandpa-verifier/pkg/finality-grandpa"
	"golang.org/x/exp/constraints"
)

// AncestryChain is a parent-pointer index over the headers embedded in
// a justification, used to check that precommit targets descend from
// the justification base. It is built fresh for every verification
// call and mutated only during that call, by marking the routes of
// accepted votes as visited.
type AncestryChain[H comparable, N constraints.Unsigned] struct {
	// base is the commit target of the justification.
	base finalityGrandpa.HashNumber[H, N]
	// parents maps a header hash to its parent hash. At most one entry
	// per distinct hash: duplicates are reported at construction and
	// never re-inserted.
	parents map[H]H
	// unvisited holds the hashes not yet used by any accepted vote's
	// route to the base.
	unvisited map[H]struct{}
	// order keeps the construction order of parents keys, so that
	// unvisited hashes can be reported deterministically.
	order []H
}

// newAncestryChain indexes the votes ancestries of a justification.
// The returned slice holds the index of every header beyond the first
// occurrence of its hash. Construction never fails.
func newAncestryChain[H comparable, N constraints.Unsigned, Hdr Header[H, N]](
	base finalityGrandpa.HashNumber[H, N],
	votesAncestries []Hdr,
) (chain AncestryChain[H, N], duplicateVotesAncestries []int) {
	chain = AncestryChain[H, N]{
		base:      base,
		parents:   make(map[H]H, len(votesAncestries)),
		unvisited: make(map[H]struct{}, len(votesAncestries)),
		order:     make([]H, 0, len(votesAncestries)),
	}

	for i, header := range votesAncestries {
		hash := header.Hash()
		if _, has := chain.parents[hash]; has {
			duplicateVotesAncestries = append(duplicateVotesAncestries, i)
			continue
		}
		chain.parents[hash] = header.ParentHash()
		chain.unvisited[hash] = struct{}{}
		chain.order = append(chain.order, hash)
	}
	return chain, duplicateVotesAncestries
}

// ancestry returns the route from the given precommit target back to
// the base, excluding the base itself. A hash that has already been
// removed from the unvisited set ends the walk early: it has been
// proven to connect to the base by an earlier route, so the connection
// is transitive and is never recomputed. Returns
// errBlockNotDescendantOfBase if the target cannot descend from the
// base or a parent pointer is missing.
func (ac *AncestryChain[H, N]) ancestry(targetHash H, targetNumber N) ([]H, error) {
	if targetNumber < ac.base.Number {
		return nil, errBlockNotDescendantOfBase
	}

	var route []H
	currentHash := targetHash
	for currentHash != ac.base.Hash {
		parentHash, ok := ac.parents[currentHash]
		if !ok {
			return nil, errBlockNotDescendantOfBase
		}
		if _, unvisited := ac.unvisited[currentHash]; !unvisited {
			return route, nil
		}
		route = append(route, currentHash)
		currentHash = parentHash
	}
	return route, nil
}

// markRouteAsVisited removes every hash of the route from the
// unvisited set.
func (ac *AncestryChain[H, N]) markRouteAsVisited(route []H) {
	for _, hash := range route {
		delete(ac.unvisited, hash)
	}
}

// isFullyVisited returns true iff every indexed header was used by
// some accepted vote's route to the base.
func (ac *AncestryChain[H, N]) isFullyVisited() bool {
	return len(ac.unvisited) == 0
}

// unvisitedHashes returns the unvisited hashes in construction order.
func (ac *AncestryChain[H, N]) unvisitedHashes() []H {
	hashes := make([]H, 0, len(ac.unvisited))
	for _, hash := range ac.order {
		if _, unvisited := ac.unvisited[hash]; unvisited {
			hashes = append(hashes, hash)
		}
	}
	return hashes
}
