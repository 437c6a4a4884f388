// Package loader provides file-level I/O around the 8086 decoder.
//
// The decoder itself works on in-memory byte buffers and line sequences, it
// never touches the filesystem. This package is the external collaborator
// that reads raw machine code binaries from disk and writes the produced
// assembly listings back as .asm files.
package loader

import (
	"fmt"
	"os"

	"github.com/Manu343726/ocho86/pkg/hw/i8086/listing"
)

// Suffix appended to the input path to build the default listing output path
const DefaultOutputSuffix = ".asm"

// Reads a raw machine code binary. An empty file is an error, there is
// nothing to decode and an empty listing would silently hide a bad input
// path.
func LoadBinary(path string) ([]byte, error) {
	program, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading binary file: %w", err)
	}

	if len(program) == 0 {
		return nil, fmt.Errorf("nothing to read from input file '%v'", path)
	}

	return program, nil
}

// Writes a listing as reassemblable assembly text to the given path
func WriteListing(path string, l *listing.Listing) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating listing file: %w", err)
	}
	defer file.Close()

	if err := l.Write(file); err != nil {
		return fmt.Errorf("writing listing to '%v': %w", path, err)
	}

	return nil
}

// Returns the output path a listing is written to when the caller does not
// pick one: the input path plus a suffix
func DefaultOutputPath(inputPath string, suffix string) string {
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}

	return inputPath + suffix
}
