// Package deps reports the availability of the external programs and
// helper files the pipeline wraps.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"copycall/internal/config"
)

// Kind distinguishes PATH-resolved binaries from files that must exist on
// disk (the VarScan jar, the helper scripts).
type Kind int

const (
	Binary Kind = iota
	File
)

// Requirement defines an external dependency the pipeline relies on.
type Requirement struct {
	Name        string
	Kind        Kind
	Target      string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Target      string
	Description string
	Available   bool
	Detail      string
}

// FromConfig lists every external dependency the configured pipeline needs.
func FromConfig(cfg *config.Config) []Requirement {
	return []Requirement{
		{Name: "samtools", Kind: Binary, Target: cfg.Tools.Samtools, Description: "alignment statistics and pileup generation"},
		{Name: "java", Kind: Binary, Target: cfg.Tools.Java, Description: "runs the VarScan jar"},
		{Name: "Rscript", Kind: Binary, Target: cfg.Tools.Rscript, Description: "runs the arm-split and segmentation helpers"},
		{Name: "VarScan jar", Kind: File, Target: cfg.Tools.VarScanJar, Description: "copy-number calling and refinement"},
		{Name: "arm-split script", Kind: File, Target: cfg.Tools.ArmSplitScript, Description: "chromosome-arm annotation"},
		{Name: "segmentation script", Kind: File, Target: cfg.Tools.SegmentScript, Description: "circular binary segmentation"},
	}
}

// Check evaluates the provided requirements and reports availability.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		target := strings.TrimSpace(req.Target)
		status := Status{
			Name:        req.Name,
			Target:      target,
			Description: strings.TrimSpace(req.Description),
		}
		switch {
		case target == "":
			status.Detail = "not configured"
		case req.Kind == Binary:
			if _, err := exec.LookPath(target); err != nil {
				status.Detail = fmt.Sprintf("binary %q not found", target)
			} else {
				status.Available = true
			}
		default:
			info, err := os.Stat(target)
			switch {
			case err != nil:
				status.Detail = fmt.Sprintf("file %q not found", target)
			case info.IsDir():
				status.Detail = fmt.Sprintf("%q is a directory", target)
			default:
				status.Available = true
			}
		}
		results = append(results, status)
	}
	return results
}
