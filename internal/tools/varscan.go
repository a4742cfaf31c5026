package tools

import (
	"errors"
	"strconv"
	"strings"

	"copycall/internal/recenter"
)

// VarScan wraps the VarScan jar for the copynumber and copyCaller steps.
// VarScan writes its result files itself; stdout carries only progress
// chatter and is discarded.
type VarScan struct {
	java string
	jar  string
	set  settings
}

// NewVarScan constructs a VarScan client around java -jar.
func NewVarScan(java, jar string, opts ...Option) (*VarScan, error) {
	java = strings.TrimSpace(java)
	jar = strings.TrimSpace(jar)
	if java == "" {
		return nil, errors.New("java binary required")
	}
	if jar == "" {
		return nil, errors.New("varscan jar required")
	}
	return &VarScan{java: java, jar: jar, set: newSettings(opts)}, nil
}

// CopyNumber builds the raw copy-number call over a joint pileup. VarScan
// appends ".copynumber" to outputPrefix itself. dataRatio normalizes the
// depth model for unequal sequencing depth; it is the two-decimal quotient
// rendered by the ratio package.
func (v *VarScan) CopyNumber(pileup, outputPrefix, dataRatio string) Invocation {
	return Invocation{
		Binary: v.java,
		Args: []string{
			"-jar", v.jar, "copynumber", pileup, outputPrefix,
			"--mpileup", "1",
			"--data-ratio", dataRatio,
		},
		set: v.set,
	}
}

// CopyCaller builds the copy-number refinement step. The homozygous
// deletion calls go to a side file next to the main output. A Down or Up
// decision is forwarded as the matching recenter flag; a NoOp decision
// produces the plain zero-recenter invocation (the orchestrator normally
// short-circuits that case with a pass-through instead).
func (v *VarScan) CopyCaller(input, output, homdel string, d recenter.Decision) Invocation {
	args := []string{
		"-jar", v.jar, "copyCaller", input,
		"--output-file", output,
		"--output-homdel-file", homdel,
	}
	switch d.Direction {
	case recenter.Down:
		args = append(args, "--recenter-down", formatAmount(d.Amount))
	case recenter.Up:
		args = append(args, "--recenter-up", formatAmount(d.Amount))
	}
	return Invocation{Binary: v.java, Args: args, set: v.set}
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
