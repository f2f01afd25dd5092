// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package grandpa implements verification of GRANDPA justifications as
// used by bridges and light clients: given a finalized target claimed
// by a caller, an authority set and a justification produced by the
// bridged chain's finality gadget, it decides whether the justification
// proves finality of the target without replaying chain history.
package grandpa

import (
	"github.com/ChainSafe/grandpa-verifier/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("consensus", "grandpa"))
