// Package stage defines the pipeline's unit of work and the runner that
// gives the work directory its checkpoint semantics.
//
// Each Stage names its input artifacts, its single output artifact, and an
// Action (an external command or a local computation). The Runner skips any
// stage whose output already passes the artifact validity check, which is
// the entire resume mechanism: rerunning the orchestrator against a prior
// work directory redoes only what never finished. Debug mode describes
// every command without executing anything or touching the filesystem.
package stage
