// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bwtzip compresses the first line of a file with the
// Burrows-Wheeler/Huffman/Elias-gamma pipeline implemented by package bwt,
// writing the result to bwtencoded.bin.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/schollz/progressbar/v2"
	"github.com/superleesa/bwtzip/bwt"
	"golang.org/x/crypto/ssh/terminal"
)

const outputPath = "bwtencoded.bin"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: bwtzip <input-file>")
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, "bwtzip:", err)
		os.Exit(1)
	}
}

func run(inputPath string) (err error) {
	defer bwt.Recover(&err)

	text, err := readFirstLine(inputPath)
	if err != nil {
		return err
	}

	// Suppressed when stderr is not a terminal (piped or redirected output),
	// the same gate pbzip2's progressBar uses on os.Stdout.
	onPhase := func(i int) {}
	if terminal.IsTerminal(int(os.Stderr.Fd())) {
		bar := progressbar.NewOptions(len(text)+1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("building suffix tree"))
		defer fmt.Fprintln(os.Stderr)
		onPhase = func(i int) { bar.Add(1) }
	}

	encoded, err := bwt.EncodeWithProgress(text, bwt.EncoderConfig{}, onPhase)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "wrote %s (%d bytes, content digest %016x)\n",
		outputPath, len(encoded), xxhash.Sum64(text))
	return nil
}

// readFirstLine reads the first line of path, excluding the line
// terminator, per §6's "reads the first line of the file as the input
// text" contract.
func readFirstLine(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("bwtzip: %s is empty", path)
	}
	line := make([]byte, len(scanner.Bytes()))
	copy(line, scanner.Bytes())
	return line, nil
}
