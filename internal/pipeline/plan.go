package pipeline

import "copycall/internal/artifact"

// StageArtifact pairs a stage name with the artifact it leaves in the work
// directory.
type StageArtifact struct {
	Stage    string
	Artifact artifact.Artifact
}

// Artifacts lists the artifact-producing stages in execution order. The
// final arm merge is absent: its output is stdout, not a file.
func (rc RunContext) Artifacts() []StageArtifact {
	return []StageArtifact{
		{Stage: "flagstat-control", Artifact: rc.ControlFlagstat()},
		{Stage: "flagstat-tumor", Artifact: rc.TumorFlagstat()},
		{Stage: "mpileup", Artifact: rc.Pileup()},
		{Stage: "copynumber", Artifact: rc.CopyNumber()},
		{Stage: "coverage-filter", Artifact: rc.FilteredCopyNumber()},
		{Stage: "copycaller", Artifact: rc.Called()},
		{Stage: "recenter", Artifact: rc.Recentered()},
		{Stage: "arm-split", Artifact: rc.ArmTagged()},
		{Stage: "segmentation", Artifact: rc.Segments()},
	}
}
