package tools

import (
	"errors"
	"strings"
)

// SegmentationSD is the standard-deviation parameter handed to the
// circular-binary-segmentation script. Fixed by the calling convention of
// the statistical routine, not configurable.
const SegmentationSD = "2.5"

// RHelper wraps the Rscript helper scripts: chromosome-arm splitting and
// DNAcopy segmentation. Both write their result tables to stdout.
type RHelper struct {
	binary        string
	armScript     string
	segmentScript string
	set           settings
}

// NewRHelper constructs the R helper client.
func NewRHelper(binary, armScript, segmentScript string, opts ...Option) (*RHelper, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("rscript binary required")
	}
	if strings.TrimSpace(armScript) == "" {
		return nil, errors.New("arm split script required")
	}
	if strings.TrimSpace(segmentScript) == "" {
		return nil, errors.New("segmentation script required")
	}
	return &RHelper{
		binary:        binary,
		armScript:     armScript,
		segmentScript: segmentScript,
		set:           newSettings(opts),
	}, nil
}

// ArmSplit annotates each called segment with its chromosome arm. The
// positional logic lives in the helper script; this invocation only feeds
// it the called table and the centromere table and captures stdout.
func (r *RHelper) ArmSplit(called, centromeres, out string) Invocation {
	return Invocation{
		Binary:     r.binary,
		Args:       []string{r.armScript, called, centromeres},
		StdoutPath: out,
		set:        r.set,
	}
}

// Segment runs circular binary segmentation over the arm-tagged table.
func (r *RHelper) Segment(armTagged, out string) Invocation {
	return Invocation{
		Binary:     r.binary,
		Args:       []string{r.segmentScript, armTagged, SegmentationSD},
		StdoutPath: out,
		set:        r.set,
	}
}
