// Package arms strips chromosome-arm annotations from segment tables.
//
// Arm tags exist only between the arm-split stage (which appends ".p" or
// ".q" to the chromosome field so segmentation treats each arm as its own
// sequence) and the final output. Merge is the pipeline's last step; its
// result is the program's stdout.
package arms

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MergeLine strips a trailing ".p" or ".q" arm suffix from the chromosome
// field of one tab-delimited segment line, preserving every other field. A
// line without an arm suffix passes through unchanged.
func MergeLine(line string) string {
	chrom, rest, hasRest := strings.Cut(line, "\t")
	if trimmed, ok := strings.CutSuffix(chrom, ".p"); ok {
		chrom = trimmed
	} else if trimmed, ok := strings.CutSuffix(chrom, ".q"); ok {
		chrom = trimmed
	}
	if !hasRest {
		return chrom
	}
	return chrom + "\t" + rest
}

// Merge copies arm-tagged segment lines from r to w with the arm suffixes
// stripped, preserving line order.
func Merge(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	writer := bufio.NewWriter(w)
	for scanner.Scan() {
		if _, err := writer.WriteString(MergeLine(scanner.Text())); err != nil {
			return fmt.Errorf("write merged segment: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write merged segment: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read arm-tagged segments: %w", err)
	}
	return writer.Flush()
}
