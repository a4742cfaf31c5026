// Package pipeline sequences the copy-number calling stages over a work
// directory: alignment statistics, joint pileup, raw copy-number calling,
// coverage filtering, call refinement with a data-driven recenter branch,
// chromosome-arm splitting, segmentation, and the final arm merge to
// stdout. The work directory is the only state; any run against a
// directory with valid artifacts resumes where the previous one stopped.
package pipeline
