package stage

import (
	"context"
	"time"

	"copycall/internal/artifact"
)

// Action is one stage's unit of external or local work. Describe returns
// the command text (or an equivalent human-readable summary) emitted to the
// diagnostic stream before execution.
type Action interface {
	Describe() string
	Run(ctx context.Context) error
}

// ActionFunc adapts a closure into an Action; used for the pipeline's local
// computations (coverage filter, recenter pass-through).
type ActionFunc struct {
	Description string
	Fn          func(ctx context.Context) error
}

func (a ActionFunc) Describe() string { return a.Description }

func (a ActionFunc) Run(ctx context.Context) error { return a.Fn(ctx) }

// Stage is a named unit of work: declared input artifacts, a single output
// artifact, and the action that produces it. Stages are constructed by the
// orchestrator immediately before execution and discarded after.
type Stage struct {
	Name   string
	Inputs []artifact.Artifact
	Output artifact.Artifact
	Action Action
}

// Recorder receives stage outcomes for the run journal. Recording is
// informational only; failures are logged and never affect the pipeline.
type Recorder interface {
	RecordSkip(ctx context.Context, stage string) error
	RecordRun(ctx context.Context, stage, command string, started, finished time.Time, runErr error) error
}

type noopRecorder struct{}

func (noopRecorder) RecordSkip(context.Context, string) error { return nil }

func (noopRecorder) RecordRun(context.Context, string, string, time.Time, time.Time, error) error {
	return nil
}
