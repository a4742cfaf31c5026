package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
)

// Samtools wraps the samtools CLI for flagstat reports and pileup
// generation.
type Samtools struct {
	binary string
	set    settings
}

// NewSamtools constructs a samtools client.
func NewSamtools(binary string, opts ...Option) (*Samtools, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("samtools binary required")
	}
	return &Samtools{binary: binary, set: newSettings(opts)}, nil
}

// Flagstat builds the alignment-statistics invocation for one BAM; the
// report lands at out.
func (s *Samtools) Flagstat(bam, out string) Invocation {
	return Invocation{
		Binary:     s.binary,
		Args:       []string{"flagstat", bam},
		StdoutPath: out,
		set:        s.set,
	}
}

// Mpileup builds the joint control/tumor pileup invocation restricted to
// the whitelisted regions. Column order in the output follows the argument
// order: control depths first, tumor second.
func (s *Samtools) Mpileup(reference, whitelist, controlBAM, tumorBAM, out string) Invocation {
	return Invocation{
		Binary:     s.binary,
		Args:       []string{"mpileup", "-q", "1", "-f", reference, "-l", whitelist, controlBAM, tumorBAM},
		StdoutPath: out,
		set:        s.set,
	}
}

// Version probes the installed samtools version, e.g. "1.19.2".
func (s *Samtools) Version(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	if err := s.set.exec.Run(ctx, s.binary, []string{"--version"}, &buf, nil); err != nil {
		return "", fmt.Errorf("probe samtools version: %w", err)
	}
	line, _, _ := strings.Cut(buf.String(), "\n")
	fields := strings.Fields(line)
	if len(fields) >= 2 && fields[0] == "samtools" {
		return fields[1], nil
	}
	return "", fmt.Errorf("unrecognized samtools version output %q", line)
}
