// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Command alicegrep builds an fmindex.Index over a file and reports
// where a pattern occurs in it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/nekitakamenev/fmindex"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "alicegrep:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr *os.File) error {
	fs := flag.NewFlagSet("alicegrep", flag.ContinueOnError)
	fs.SetOutput(stderr)

	file := fs.String("file", "", "path to the corpus file to index")
	pattern := fs.String("pattern", "", "pattern to search for")
	sampleStep := fs.Int("sample-step", 8, "suffix-array sampling interval")
	locate := fs.Bool("locate", false, "print every match offset, not just the count")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" || *pattern == "" {
		fs.Usage()
		return errors.New("both -file and -pattern are required")
	}

	text, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *file, err)
	}

	idx, err := fmindex.Build(text, *sampleStep)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	pat := []byte(*pattern)
	fmt.Fprintf(stdout, "count: %d\n", idx.Count(pat))

	if *locate {
		positions := idx.LocateAll(pat)
		sort.Ints(positions)
		for _, pos := range positions {
			fmt.Fprintf(stdout, "%d\n", pos)
		}
	}
	return nil
}
