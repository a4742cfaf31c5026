package pipeline

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Coverage floors for the raw copy-number table. Segments below either
// depth carry too little signal for the refinement caller and only add
// noise to the recenter median.
const (
	minTumorDepth   = 10.0
	minControlDepth = 20.0
)

// Zero-based columns in the copy-number tool's output schema.
const (
	controlDepthColumn = 4
	tumorDepthColumn   = 5
)

// filterCopyNumber streams the raw copy-number table from src to dst,
// keeping the header line and every segment with tumor depth at or above
// minTumorDepth and control depth at or above minControlDepth. Both
// thresholds are independent checks on distinct columns. Returns the
// kept/dropped data-row counts for logging.
func filterCopyNumber(src, dst string) (kept, dropped int, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, 0, fmt.Errorf("open copy-number table: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, 0, fmt.Errorf("create filtered table: %w", err)
	}
	defer out.Close()

	writer := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if err := writeLine(writer, line); err != nil {
				return 0, 0, err
			}
			continue
		}
		if !passesCoverage(line) {
			dropped++
			continue
		}
		kept++
		if err := writeLine(writer, line); err != nil {
			return 0, 0, err
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("read copy-number table: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return 0, 0, fmt.Errorf("flush filtered table: %w", err)
	}
	return kept, dropped, out.Close()
}

func passesCoverage(line string) bool {
	fields := strings.Split(line, "\t")
	if len(fields) <= tumorDepthColumn {
		return false
	}
	control, err := strconv.ParseFloat(strings.TrimSpace(fields[controlDepthColumn]), 64)
	if err != nil {
		return false
	}
	tumor, err := strconv.ParseFloat(strings.TrimSpace(fields[tumorDepthColumn]), 64)
	if err != nil {
		return false
	}
	return tumor >= minTumorDepth && control >= minControlDepth
}

func writeLine(w *bufio.Writer, line string) error {
	if _, err := w.WriteString(line); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
