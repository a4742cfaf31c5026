package pipeline

import (
	"bufio"
	"os"
	"strings"

	"copycall/internal/services"
)

// pileupSampleLines bounds how much of the pileup the naming sanity check
// reads.
const pileupSampleLines = 100000

// referenceBaseColumn is the zero-based reference-base field of a pileup
// line. When the reference FASTA does not match the alignments' contig
// naming, samtools emits the placeholder "N" for every position instead of
// failing.
const referenceBaseColumn = 2

// checkPileupNaming samples up to the first pileupSampleLines lines of the
// pileup; if every sampled reference-base field is the "N" placeholder the
// reference and the alignments disagree on contig names and the whole
// downstream call set would be garbage, so the run dies here.
func checkPileupNaming(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return services.Wrap(services.ErrSanity, "mpileup", "sample pileup", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	sampled := 0
	for sampled < pileupSampleLines && scanner.Scan() {
		sampled++
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) <= referenceBaseColumn {
			// Malformed line; not the all-N signature, let it pass.
			return nil
		}
		if !strings.EqualFold(fields[referenceBaseColumn], "N") {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return services.Wrap(services.ErrSanity, "mpileup", "sample pileup", path, err)
	}
	if sampled == 0 {
		return nil
	}
	return services.Wrap(services.ErrSanity, "mpileup", "reference naming check",
		"every sampled pileup line has reference base N; the reference FASTA does not match the alignments' chromosome names", nil)
}
