// Package artifact models pipeline stage outputs on disk and the validity
// heuristic that gates resume behavior.
//
// Every wrapped tool in the pipeline emits either a multi-line result file or
// a single diagnostic line on failure, and several of them do not propagate
// failure through their exit status. Reading just the first two lines of a
// file therefore distinguishes success from failure without knowing each
// tool's own semantics. Validity is recomputed on every check because the
// file may have been produced by a prior interrupted run.
package artifact

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Pileup lines for deep whole-genome positions can run long; give the
// scanner room well past samtools' observed maximum.
const maxLineBytes = 8 * 1024 * 1024

// Artifact identifies one stage output file by path.
type Artifact struct {
	Path string
}

// New returns an Artifact for the given path.
func New(path string) Artifact {
	return Artifact{Path: path}
}

// Valid reports whether the artifact exists and holds more than one line.
// A missing or zero-byte file is invalid, and so is a file with exactly one
// line no matter how long that line is.
func (a Artifact) Valid() bool {
	return Valid(a.Path)
}

// Alignment reports whether the artifact is a binary alignment file. The
// two-line heuristic does not apply to BAMs, so stage input validation
// skips them.
func (a Artifact) Alignment() bool {
	return strings.EqualFold(filepath.Ext(a.Path), ".bam")
}

// Valid reports whether path exists and its first two lines, when read,
// yield a line count of exactly two.
func Valid(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lines := 0
	for lines < 2 && scanner.Scan() {
		lines++
	}
	return lines == 2
}
