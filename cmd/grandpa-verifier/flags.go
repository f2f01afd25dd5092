// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

var (
	// JustificationFlag is the SCALE encoded justification, either as a
	// 0x prefixed hex string or as a path to a file containing one
	JustificationFlag = cli.StringFlag{
		Name:  "justification",
		Usage: "SCALE encoded justification as 0x prefixed hex, or a path to a file containing it",
	}
	// AuthoritiesFlag points to the authority set file
	AuthoritiesFlag = cli.StringFlag{
		Name:  "authorities",
		Usage: "Path to the authority set JSON file: {\"setID\": n, \"authorities\": [{\"id\": \"0x..\", \"weight\": n}]}",
	}
	// TargetHashFlag is the hash of the block expected to be finalized
	TargetHashFlag = cli.StringFlag{
		Name:  "target-hash",
		Usage: "0x prefixed hash of the block the justification must prove finalized",
	}
	// TargetNumberFlag is the number of the block expected to be finalized
	TargetNumberFlag = cli.UintFlag{
		Name:  "target-number",
		Usage: "Number of the block the justification must prove finalized",
	}
	// StrictFlag selects the exhaustive verification policy
	StrictFlag = cli.BoolFlag{
		Name:  "strict",
		Usage: "Validate every vote and report all anomalies instead of stopping at the threshold",
	}
	// LogFlag sets the global log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels error, warn, info, debug and trace",
	}
)
