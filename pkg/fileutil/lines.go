package fileutil

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LineReader provides a helper/utility to read plain-text files line by line
type LineReader struct {
	FilePath string
}

// NewLineReader returns a LineReader instance for a specified text file
func NewLineReader(fp string) *LineReader {
	return &LineReader{
		FilePath: fp,
	}
}

// ReadAndProcessByLine reads and processes a text file line by line, allows
// for streaming large file(s). Blank lines and '#'-prefixed comment lines are
// skipped; lineNo still counts them so errors point at the real file line.
func (r *LineReader) ReadAndProcessByLine(processorFn func(lineNo int, line string) error) error {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := processorFn(lineNo, line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	return nil
}
