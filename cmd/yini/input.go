package main

import (
	"fmt"
	"io"
	"os"
)

type document struct {
	name string
	src  []byte
}

// readDocuments reads each named file, "-" or no files at all meaning
// standard input.
func readDocuments(in io.Reader, files []string) ([]document, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	docs := make([]document, 0, len(files))
	for _, file := range files {
		var (
			src []byte
			err error
		)
		if file == "-" {
			src, err = io.ReadAll(in)
		} else {
			src, err = os.ReadFile(file)
		}
		if err != nil {
			return nil, fmt.Errorf("could not read %q: %w", file, err)
		}
		docs = append(docs, document{name: file, src: src})
	}
	return docs, nil
}
