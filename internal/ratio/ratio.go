// Package ratio derives the control/tumor read-depth normalization ratio
// from alignment-statistics reports.
package ratio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"copycall/internal/artifact"
)

// DataRatio is the control-mapped over tumor-mapped read count quotient. It
// normalizes the copy-number caller's depth model for unequal sequencing
// depth between the samples.
type DataRatio struct {
	ControlMapped int64
	TumorMapped   int64
}

// Compute extracts the mapped-read counts from the two flagstat reports and
// returns their ratio. Either report failing the artifact validity check is
// an error; the caller decides whether that is fatal (it is, outside of
// debug runs).
func Compute(controlStats, tumorStats string) (DataRatio, error) {
	if !artifact.Valid(controlStats) {
		return DataRatio{}, fmt.Errorf("control flagstat %s is missing or truncated", controlStats)
	}
	if !artifact.Valid(tumorStats) {
		return DataRatio{}, fmt.Errorf("tumor flagstat %s is missing or truncated", tumorStats)
	}

	control, err := mappedCount(controlStats)
	if err != nil {
		return DataRatio{}, fmt.Errorf("control flagstat: %w", err)
	}
	tumor, err := mappedCount(tumorStats)
	if err != nil {
		return DataRatio{}, fmt.Errorf("tumor flagstat: %w", err)
	}
	if tumor == 0 {
		return DataRatio{}, fmt.Errorf("tumor flagstat %s reports zero mapped reads", tumorStats)
	}
	return DataRatio{ControlMapped: control, TumorMapped: tumor}, nil
}

// Neutral is the ratio debug runs fall back to when no flagstat output
// exists yet; it matches the caller's default depth model.
func Neutral() DataRatio {
	return DataRatio{ControlMapped: 1, TumorMapped: 1}
}

// String renders the quotient truncated (not rounded) to two decimal
// places, matching bc-style fixed-point division: 1/3 is "0.33", 2/3 is
// "0.66". The leading zero is kept; the caller accepts both "0.88" and
// ".88" but only the former is standard fixed-point.
func (r DataRatio) String() string {
	if r.TumorMapped == 0 {
		return "0.00"
	}
	hundredths := r.ControlMapped * 100 / r.TumorMapped
	return fmt.Sprintf("%d.%02d", hundredths/100, hundredths%100)
}

// mappedCount returns the leading numeric field of the first line in the
// report that mentions a mapped count. Flagstat emits lines like
// "123456 + 0 mapped (98.50% : N/A)".
func mappedCount(path string) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "mapped") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		count, parseErr := strconv.ParseInt(fields[0], 10, 64)
		if parseErr != nil {
			return 0, fmt.Errorf("parse mapped count from %q: %w", line, parseErr)
		}
		return count, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("no mapped count line in %s", path)
}
