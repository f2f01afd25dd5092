// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChainSafe/grandpa-verifier/internal/log"
	"github.com/ChainSafe/grandpa-verifier/lib/common"
	"github.com/ChainSafe/grandpa-verifier/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-verifier/lib/substrate"
	finalityGrandpa "github.com/ChainSafe/grandpa-verifier/pkg/finality-grandpa"
	"github.com/urfave/cli"
)

func handleVerify(ctx *cli.Context) error {
	if levelStr := ctx.String(LogFlag.Name); levelStr != "" {
		level, err := log.ParseLevel(levelStr)
		if err != nil {
			return err
		}
		log.PatchGlobal(log.SetLevel(level))
		logger = log.NewFromGlobal(log.AddContext("cmd", "grandpa-verifier"))
	}

	justification, err := loadJustification(ctx.String(JustificationFlag.Name))
	if err != nil {
		return err
	}

	authoritySet, err := loadAuthoritySet(ctx.String(AuthoritiesFlag.Name))
	if err != nil {
		return err
	}
	context, err := substrate.NewVerificationContext(authoritySet)
	if err != nil {
		return err
	}

	targetHash, err := common.HexToHash(ctx.String(TargetHashFlag.Name))
	if err != nil {
		return fmt.Errorf("parsing target hash: %w", err)
	}
	target := substrate.HashNumber{
		Hash:   targetHash,
		Number: uint32(ctx.Uint(TargetNumberFlag.Name)),
	}

	logger.Infof("verifying justification for round %d over %d authorities (set %d)",
		justification.Round, len(authoritySet.Authorities), authoritySet.SetID)

	if ctx.Bool(StrictFlag.Name) {
		report, err := substrate.VerifyJustificationStrict(target, context, justification)
		printReport(report)
		if err != nil {
			return err
		}
	} else if err := substrate.VerifyJustification(target, context, justification); err != nil {
		return err
	}

	fmt.Printf("justification verified: block %s (#%d) is finalized\n",
		target.Hash, target.Number)
	return nil
}

// loadJustification accepts either a 0x prefixed hex string or a path
// to a file containing one.
func loadJustification(value string) (*substrate.Justification, error) {
	if value == "" {
		return nil, fmt.Errorf("--%s is required", JustificationFlag.Name)
	}
	if !strings.HasPrefix(value, "0x") {
		raw, err := os.ReadFile(filepath.Clean(value))
		if err != nil {
			return nil, fmt.Errorf("reading justification file: %w", err)
		}
		value = strings.TrimSpace(string(raw))
	}
	encoded, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decoding justification hex: %w", err)
	}
	return substrate.DecodeJustification(encoded)
}

type authoritySetFile struct {
	SetID       uint64 `json:"setID"`
	Authorities []struct {
		ID     string `json:"id"`
		Weight uint64 `json:"weight"`
	} `json:"authorities"`
}

func loadAuthoritySet(path string) (substrate.AuthoritySet, error) {
	if path == "" {
		return substrate.AuthoritySet{}, fmt.Errorf("--%s is required", AuthoritiesFlag.Name)
	}
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return substrate.AuthoritySet{}, fmt.Errorf("reading authority set file: %w", err)
	}
	var file authoritySetFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return substrate.AuthoritySet{}, fmt.Errorf("parsing authority set file: %w", err)
	}

	authorities := make([]finalityGrandpa.IDWeight[substrate.AuthorityID], 0, len(file.Authorities))
	for _, authority := range file.Authorities {
		if _, err := ed25519.NewPublicKeyFromHex(authority.ID); err != nil {
			return substrate.AuthoritySet{}, fmt.Errorf("authority %q: %w", authority.ID, err)
		}
		authorities = append(authorities, finalityGrandpa.IDWeight[substrate.AuthorityID]{
			ID:     substrate.AuthorityID(authority.ID),
			Weight: finalityGrandpa.VoterWeight(authority.Weight),
		})
	}
	return substrate.AuthoritySet{
		Authorities: authorities,
		SetID:       file.SetID,
	}, nil
}

func printReport(report substrate.StrictReport) {
	if !report.HasAnomalies() {
		fmt.Println("strict verification found no anomalies")
		return
	}
	if len(report.DuplicateVotesAncestries) > 0 {
		fmt.Printf("duplicate votes ancestries at indices %v\n", report.DuplicateVotesAncestries)
	}
	if len(report.RedundantVotes) > 0 {
		fmt.Printf("redundant votes at indices %v\n", report.RedundantVotes)
	}
	if len(report.UnknownAuthorityVotes) > 0 {
		fmt.Printf("unknown authority votes at indices %v\n", report.UnknownAuthorityVotes)
	}
	if len(report.UnrelatedAncestryVotes) > 0 {
		fmt.Printf("unrelated ancestry votes at indices %v\n", report.UnrelatedAncestryVotes)
	}
	if len(report.InvalidSignatureVotes) > 0 {
		fmt.Printf("invalid signature votes at indices %v\n", report.InvalidSignatureVotes)
	}
	for _, hash := range report.RedundantVotesAncestries {
		fmt.Printf("redundant votes ancestries header %s\n", hash)
	}
	for _, equivocation := range report.Equivocations {
		fmt.Printf("equivocation by %s in round %d: voted %s (#%d) and %s (#%d)\n",
			equivocation.Identity, equivocation.RoundNumber,
			equivocation.First.Vote.TargetHash, equivocation.First.Vote.TargetNumber,
			equivocation.Second.Vote.TargetHash, equivocation.Second.Vote.TargetNumber)
	}
}
