package main

import (
	"io"
	"log"
	"os"
)

// setupLogging points the standard logger at path, or at stderr.
// The terminal frontend owns the screen, so without a path its log is discarded.
func setupLogging(path string, quiet bool) (*os.File, error) {
	if path == "" {
		if quiet {
			log.SetOutput(io.Discard)
		} else {
			log.SetOutput(os.Stderr)
		}
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}
