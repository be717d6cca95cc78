// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command st2sa writes the 1-based suffix array of the first line of a
// file to output_sa.txt, one entry per line.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/superleesa/bwtzip/bwt"
)

const outputPath = "output_sa.txt"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: st2sa <input-file>")
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, "st2sa:", err)
		os.Exit(1)
	}
}

func run(inputPath string) (err error) {
	defer bwt.Recover(&err)

	text, err := readFirstLine(inputPath)
	if err != nil {
		return err
	}

	sa, err := bwt.SuffixArray(text)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, s := range sa {
		// The library's suffix array is 0-based; the CLI's contract is
		// 1-based, matching the reference implementation's st2sa output.
		if _, err := fmt.Fprintln(w, s+1); err != nil {
			return err
		}
	}
	return w.Flush()
}

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
		return nil, fmt.Errorf("st2sa: %s is empty", path)
	}
	line := make([]byte, len(scanner.Bytes()))
	copy(line, scanner.Bytes())
	return line, nil
}
