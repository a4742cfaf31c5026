// Package recenter classifies the median log-ratio of called copy-number
// segments into the refinement branch the orchestrator should take.
package recenter

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Threshold is the absolute median log-ratio beyond which the called
// segments are recentered. The boundary values themselves are left alone.
const Threshold = 0.2

// logRatioColumn is the zero-based index of the log-ratio field in the
// called segment table.
const logRatioColumn = 6

// Direction selects the refinement branch.
type Direction int

const (
	NoOp Direction = iota
	Down
	Up
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "none"
	}
}

// Decision is a classified recenter delta. Amount is always non-negative
// and only meaningful for Down and Up.
type Decision struct {
	Direction Direction
	Amount    float64
}

// Classify maps a median log-ratio delta onto a refinement branch:
// below -Threshold recenter down by |delta|, above +Threshold recenter up
// by delta, otherwise pass the called segments through unchanged.
func Classify(delta float64) Decision {
	switch {
	case delta < -Threshold:
		return Decision{Direction: Down, Amount: -delta}
	case delta > Threshold:
		return Decision{Direction: Up, Amount: delta}
	default:
		return Decision{Direction: NoOp}
	}
}

// MedianLogRatio computes the median of the log-ratio column of a called
// segment table. Lines whose log-ratio field does not parse (the header,
// stray diagnostics) are skipped; a table with no parseable values is an
// error because the recenter branch cannot be chosen without it.
func MedianLogRatio(path string) (float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var values []float64
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) <= logRatioColumn {
			continue
		}
		value, parseErr := strconv.ParseFloat(strings.TrimSpace(fields[logRatioColumn]), 64)
		if parseErr != nil {
			continue
		}
		values = append(values, value)
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("no parseable log-ratio values in %s", path)
	}

	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid], nil
	}
	return (values[mid-1] + values[mid]) / 2, nil
}
