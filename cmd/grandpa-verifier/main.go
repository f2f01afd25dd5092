// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Command grandpa-verifier checks GRANDPA finality justifications
// against an authority set, without connecting to any chain.
package main

import (
	"fmt"
	"os"

	"github.com/ChainSafe/grandpa-verifier/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("cmd", "grandpa-verifier"))

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "grandpa-verifier"
	app.Usage = "Offline GRANDPA finality justification verifier"
	app.Commands = []cli.Command{
		{
			Name:   "verify",
			Usage:  "Verify that a justification finalizes the target block",
			Action: handleVerify,
			Flags: []cli.Flag{
				JustificationFlag,
				AuthoritiesFlag,
				TargetHashFlag,
				TargetNumberFlag,
				StrictFlag,
				LogFlag,
			},
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
