package main

import (
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// loadInput reads one input source: a file path, or in hex mode a hex
// string with any whitespace ignored.
func loadInput(arg string, hexMode bool) ([]byte, error) {
	if hexMode {
		data, err := hex.DecodeString(strings.Join(strings.Fields(arg), ""))
		if err != nil {
			return nil, errors.Wrap(err, "invalid hex input")
		}
		return data, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}
	return data, nil
}

func readStdin() ([]byte, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stdin")
	}
	return data, nil
}
