package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/coffeelex/coffeelex"
)

// run reads source from inputFile (or stdin when empty), lexes it, and
// writes a JSON array of [kindName, start, literal] triples to out (or to
// outputFile when non-empty) — spec.md §6's CLI contract.
func run(inputFile, outputFile string, useCS2 bool, stdin io.Reader, out io.Writer) error {
	var data []byte
	var err error
	if inputFile == "" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(inputFile)
	}
	if err != nil {
		return err
	}

	list, err := coffeelex.Lex(string(data), coffeelex.Options{UseCS2: useCS2})
	if err != nil {
		return err
	}

	triples := make([][3]any, 0, list.Len())
	for _, t := range list.Tokens() {
		triples = append(triples, [3]any{string(t.Kind), t.Start, t.Literal(string(data))})
	}

	encoded, err := json.Marshal(triples)
	if err != nil {
		return err
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, encoded, 0644)
	}
	_, err = out.Write(encoded)
	return err
}
