// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bwtunzip reverses bwtzip's encoding, writing the recovered text
// to recovered.txt.
package main

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/superleesa/bwtzip/bwt"
)

const outputPath = "recovered.txt"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: bwtunzip <encoded-file>")
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, "bwtunzip:", err)
		os.Exit(1)
	}
}

func run(inputPath string) (err error) {
	defer bwt.Recover(&err)

	encoded, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	text, err := bwt.Decode(encoded, bwt.DecoderConfig{})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, text, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "wrote %s (%d bytes, content digest %016x)\n",
		outputPath, len(text), xxhash.Sum64(text))
	return nil
}
