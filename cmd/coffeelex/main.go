package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	var useCS2 bool
	var outputFile string
	flag.BoolVar(&useCS2, "cs2", false, "recognise # comments inside heregexes")
	flag.StringVar(&outputFile, "o", "", "output file path (default stdout)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: coffeelex [-cs2] [-o output.json] [input.coffee]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var inputFile string
	if flag.NArg() > 0 {
		inputFile = flag.Arg(0)
	}

	if err := run(inputFile, outputFile, useCS2, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
