package pipeline

import (
	"path/filepath"

	"copycall/internal/artifact"
	"copycall/internal/preflight"
)

// RunContext carries everything a run needs: the working directory, the
// debug flag, and the five required external inputs. It is created once at
// startup and never mutated; every stage artifact path derives
// deterministically from the working directory, which is what makes the
// directory a complete, resumable checkpoint.
type RunContext struct {
	WorkDir string
	Debug   bool
	Inputs  preflight.Inputs
}

// NewRunContext builds an immutable run context.
func NewRunContext(workDir string, debug bool, inputs preflight.Inputs) RunContext {
	return RunContext{WorkDir: workDir, Debug: debug, Inputs: inputs}
}

func (rc RunContext) artifactFor(name string) artifact.Artifact {
	return artifact.New(filepath.Join(rc.WorkDir, name))
}

// ControlFlagstat is the alignment-statistics report for the control BAM.
func (rc RunContext) ControlFlagstat() artifact.Artifact { return rc.artifactFor("control.flagstat") }

// TumorFlagstat is the alignment-statistics report for the tumor BAM.
func (rc RunContext) TumorFlagstat() artifact.Artifact { return rc.artifactFor("tumor.flagstat") }

// Pileup is the joint per-position depth table, control columns first.
func (rc RunContext) Pileup() artifact.Artifact { return rc.artifactFor("tumor_control.mpileup") }

// CopyNumberPrefix is the output prefix handed to the copy-number caller,
// which appends ".copynumber" itself.
func (rc RunContext) CopyNumberPrefix() string { return filepath.Join(rc.WorkDir, "output") }

// CopyNumber is the raw per-segment copy-number table.
func (rc RunContext) CopyNumber() artifact.Artifact { return rc.artifactFor("output.copynumber") }

// FilteredCopyNumber is the coverage-filtered copy-number table.
func (rc RunContext) FilteredCopyNumber() artifact.Artifact {
	return rc.artifactFor("output.copynumber.filtered")
}

// Called is the called segment table produced by the refinement tool.
func (rc RunContext) Called() artifact.Artifact { return rc.artifactFor("output.copynumber.called") }

// CalledHomdel is the homozygous-deletion side file of the initial call.
func (rc RunContext) CalledHomdel() artifact.Artifact {
	return rc.artifactFor("output.copynumber.called.homdel")
}

// Recentered is the called table after the recenter branch, whatever form
// that took (refinement rerun or pass-through).
func (rc RunContext) Recentered() artifact.Artifact {
	return rc.artifactFor("output.copynumber.recentered")
}

// RecenteredHomdel is the homozygous-deletion side file of a recenter rerun.
func (rc RunContext) RecenteredHomdel() artifact.Artifact {
	return rc.artifactFor("output.copynumber.recentered.homdel")
}

// ArmTagged is the recentered table with chromosome-arm annotations.
func (rc RunContext) ArmTagged() artifact.Artifact {
	return rc.artifactFor("output.copynumber.recentered.arms")
}

// Segments is the final segmentation table, still arm-tagged; the merge
// step strips the tags on the way to stdout.
func (rc RunContext) Segments() artifact.Artifact {
	return rc.artifactFor("output.copynumber.recentered.arms.segments")
}
