package stage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"copycall/internal/logging"
	"copycall/internal/services"
)

// Runner executes pipeline stages with the resume semantics the work
// directory provides: a stage whose output is already valid is skipped, so
// reruns after a partial failure redo only the unfinished work.
type Runner struct {
	logger  *slog.Logger
	journal Recorder
	debug   bool
}

// NewRunner constructs a Runner. journal may be nil (debug runs never open
// one); logger may be nil for tests.
func NewRunner(logger *slog.Logger, journal Recorder, debug bool) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	if journal == nil {
		journal = noopRecorder{}
	}
	return &Runner{logger: logger, journal: journal, debug: debug}
}

// Debug reports whether the runner is in dry-run mode.
func (r *Runner) Debug() bool { return r.debug }

// Run executes one stage.
//
// The output is validity-checked first: a valid output means a prior run
// already completed this stage and it is skipped. Declared inputs other
// than binary alignments are then validated (skipped in debug mode), the
// action's command text is emitted to the diagnostic stream, and the action
// runs unless in debug mode. A stage whose output is still invalid after a
// real execution is a fatal failure.
func (r *Runner) Run(ctx context.Context, st Stage) error {
	logger := r.logger.With(logging.String(logging.FieldStage, st.Name))

	if st.Output.Valid() {
		logger.Info("output already valid, skipping",
			logging.String(logging.FieldEventType, "stage_skip"),
			logging.String("output", st.Output.Path))
		if err := r.journal.RecordSkip(ctx, st.Name); err != nil {
			logger.Warn("journal skip record failed", logging.Error(err))
		}
		return nil
	}

	if !r.debug {
		for _, input := range st.Inputs {
			if input.Alignment() {
				continue
			}
			if !input.Valid() {
				return services.Wrap(services.ErrValidation, st.Name, "check inputs",
					fmt.Sprintf("required input %s is missing or truncated", input.Path), nil)
			}
		}
	}

	logger.Info("stage command",
		logging.String(logging.FieldEventType, "stage_start"),
		logging.String(logging.FieldCommand, st.Action.Describe()))

	if r.debug {
		return nil
	}

	started := time.Now()
	runErr := st.Action.Run(ctx)
	finished := time.Now()

	logger.Info("stage executed",
		logging.String(logging.FieldEventType, "stage_finish"),
		logging.String("finished_at", finished.UTC().Format(time.RFC3339)),
		logging.Duration("elapsed", finished.Sub(started)))

	if err := r.journal.RecordRun(ctx, st.Name, st.Action.Describe(), started, finished, runErr); err != nil {
		logger.Warn("journal run record failed", logging.Error(err))
	}

	if runErr != nil {
		return services.Wrap(services.ErrExternalTool, st.Name, "execute", "", runErr)
	}
	if !st.Output.Valid() {
		return services.Wrap(services.ErrValidation, st.Name, "verify output",
			fmt.Sprintf("expected output %s is missing or truncated", st.Output.Path), nil)
	}
	return nil
}
