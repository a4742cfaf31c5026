package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"copycall/internal/arms"
	"copycall/internal/artifact"
	"copycall/internal/fileutil"
	"copycall/internal/logging"
	"copycall/internal/ratio"
	"copycall/internal/recenter"
	"copycall/internal/services"
	"copycall/internal/stage"
	"copycall/internal/tools"
)

// Toolset bundles the external tool clients the orchestrator sequences.
type Toolset struct {
	Samtools *tools.Samtools
	VarScan  *tools.VarScan
	R        *tools.RHelper
}

// Orchestrator drives the fixed stage sequence, threading each stage's
// output into the next stage's input. Execution is strictly sequential;
// the only branch point is the recenter decision.
type Orchestrator struct {
	rc     RunContext
	ts     Toolset
	runner *stage.Runner
	logger *slog.Logger
	stdout io.Writer
}

// New constructs an orchestrator. stdout receives the final merged segment
// table and nothing else.
func New(rc RunContext, ts Toolset, runner *stage.Runner, logger *slog.Logger, stdout io.Writer) *Orchestrator {
	return &Orchestrator{
		rc:     rc,
		ts:     ts,
		runner: runner,
		logger: logging.NewComponentLogger(logger, "orchestrator"),
		stdout: stdout,
	}
}

// Run executes the pipeline to completion. Every failure is terminal:
// there is no retry, and recovery means rerunning against the same work
// directory so valid artifacts are skipped.
func (o *Orchestrator) Run(ctx context.Context) error {
	in := o.rc.Inputs

	controlStats := o.rc.ControlFlagstat()
	if err := o.runner.Run(ctx, stage.Stage{
		Name:   "flagstat-control",
		Inputs: []artifact.Artifact{artifact.New(in.ControlBAM)},
		Output: controlStats,
		Action: o.ts.Samtools.Flagstat(in.ControlBAM, controlStats.Path),
	}); err != nil {
		return err
	}

	tumorStats := o.rc.TumorFlagstat()
	if err := o.runner.Run(ctx, stage.Stage{
		Name:   "flagstat-tumor",
		Inputs: []artifact.Artifact{artifact.New(in.TumorBAM)},
		Output: tumorStats,
		Action: o.ts.Samtools.Flagstat(in.TumorBAM, tumorStats.Path),
	}); err != nil {
		return err
	}

	pileup := o.rc.Pileup()
	if err := o.runner.Run(ctx, stage.Stage{
		Name: "mpileup",
		Inputs: []artifact.Artifact{
			artifact.New(in.Reference),
			artifact.New(in.Whitelist),
			artifact.New(in.ControlBAM),
			artifact.New(in.TumorBAM),
		},
		Output: pileup,
		Action: o.ts.Samtools.Mpileup(in.Reference, in.Whitelist, in.ControlBAM, in.TumorBAM, pileup.Path),
	}); err != nil {
		return err
	}

	if pileup.Valid() {
		if err := checkPileupNaming(pileup.Path); err != nil {
			return err
		}
	} else {
		// Only reachable in debug: a real run either produced a valid
		// pileup or already failed.
		o.logger.Info("pileup unavailable, skipping reference naming check")
	}

	dataRatio, err := o.dataRatio()
	if err != nil {
		return err
	}

	copyNumber := o.rc.CopyNumber()
	if err := o.runner.Run(ctx, stage.Stage{
		Name:   "copynumber",
		Inputs: []artifact.Artifact{pileup},
		Output: copyNumber,
		Action: o.ts.VarScan.CopyNumber(pileup.Path, o.rc.CopyNumberPrefix(), dataRatio.String()),
	}); err != nil {
		return err
	}

	filtered := o.rc.FilteredCopyNumber()
	if err := o.runner.Run(ctx, stage.Stage{
		Name:   "coverage-filter",
		Inputs: []artifact.Artifact{copyNumber},
		Output: filtered,
		Action: stage.ActionFunc{
			Description: fmt.Sprintf("filter %s (tumor depth >= %v, control depth >= %v) > %s",
				copyNumber.Path, minTumorDepth, minControlDepth, filtered.Path),
			Fn: func(context.Context) error {
				kept, dropped, filterErr := filterCopyNumber(copyNumber.Path, filtered.Path)
				if filterErr != nil {
					return filterErr
				}
				o.logger.Info("coverage filter applied",
					logging.Int("kept", kept), logging.Int("dropped", dropped))
				return nil
			},
		},
	}); err != nil {
		return err
	}

	called := o.rc.Called()
	if err := o.runner.Run(ctx, stage.Stage{
		Name:   "copycaller",
		Inputs: []artifact.Artifact{filtered},
		Output: called,
		Action: o.ts.VarScan.CopyCaller(filtered.Path, called.Path, o.rc.CalledHomdel().Path, recenter.Decision{}),
	}); err != nil {
		return err
	}

	if err := o.runRecenter(ctx, filtered, called); err != nil {
		return err
	}

	armTagged := o.rc.ArmTagged()
	if err := o.runner.Run(ctx, stage.Stage{
		Name:   "arm-split",
		Inputs: []artifact.Artifact{o.rc.Recentered(), artifact.New(in.Centromeres)},
		Output: armTagged,
		Action: o.ts.R.ArmSplit(o.rc.Recentered().Path, in.Centromeres, armTagged.Path),
	}); err != nil {
		return err
	}

	segments := o.rc.Segments()
	if err := o.runner.Run(ctx, stage.Stage{
		Name:   "segmentation",
		Inputs: []artifact.Artifact{armTagged},
		Output: segments,
		Action: o.ts.R.Segment(armTagged.Path, segments.Path),
	}); err != nil {
		return err
	}

	return o.emitMerged(segments)
}

// runRecenter chooses and executes the refinement branch. The delta is
// only computed when the recentered artifact still needs producing; on a
// resume with a valid recentered table the stage skips and the called
// table is not re-read.
func (o *Orchestrator) runRecenter(ctx context.Context, filtered, called artifact.Artifact) error {
	recentered := o.rc.Recentered()

	var action stage.Action
	if recentered.Valid() {
		action = stage.ActionFunc{
			Description: "reuse recentered segments",
			Fn:          func(context.Context) error { return nil },
		}
	} else {
		decision, err := o.recenterDecision(called)
		if err != nil {
			return err
		}
		if decision.Direction == recenter.NoOp {
			// Pass-through: byte-identical downstream to a zero-amount
			// refinement rerun, without invoking the tool again.
			action = stage.ActionFunc{
				Description: fmt.Sprintf("ln -s %s %s", called.Path, recentered.Path),
				Fn: func(context.Context) error {
					return fileutil.LinkOrCopy(called.Path, recentered.Path)
				},
			}
		} else {
			action = o.ts.VarScan.CopyCaller(filtered.Path, recentered.Path, o.rc.RecenteredHomdel().Path, decision)
		}
	}

	return o.runner.Run(ctx, stage.Stage{
		Name:   "recenter",
		Inputs: []artifact.Artifact{called},
		Output: recentered,
		Action: action,
	})
}

func (o *Orchestrator) recenterDecision(called artifact.Artifact) (recenter.Decision, error) {
	if !called.Valid() {
		if o.rc.Debug {
			o.logger.Info("called segments unavailable, assuming no recenter for dry run")
			return recenter.Decision{}, nil
		}
		return recenter.Decision{}, services.Wrap(services.ErrValidation, "recenter", "compute delta",
			fmt.Sprintf("called segment table %s is missing or truncated", called.Path), nil)
	}

	delta, err := recenter.MedianLogRatio(called.Path)
	if err != nil {
		return recenter.Decision{}, services.Wrap(services.ErrValidation, "recenter", "compute delta", "", err)
	}
	decision := recenter.Classify(delta)
	o.logger.Info("recenter decision",
		logging.Float64("median_log_ratio", delta),
		logging.String("direction", decision.Direction.String()),
		logging.Float64("amount", decision.Amount))
	return decision, nil
}

func (o *Orchestrator) dataRatio() (ratio.DataRatio, error) {
	r, err := ratio.Compute(o.rc.ControlFlagstat().Path, o.rc.TumorFlagstat().Path)
	if err != nil {
		if o.rc.Debug {
			o.logger.Warn("flagstat reports unavailable, dry run continues with neutral data ratio",
				logging.Error(err))
			return ratio.Neutral(), nil
		}
		return ratio.DataRatio{}, services.Wrap(services.ErrValidation, "copynumber", "compute data ratio", "", err)
	}
	o.logger.Info("data ratio computed",
		logging.String("ratio", r.String()),
		logging.Int("control_mapped", int(r.ControlMapped)),
		logging.Int("tumor_mapped", int(r.TumorMapped)))
	return r, nil
}

// emitMerged strips the arm tags from the segmentation table and writes
// the result to stdout. This is the only stdout the program ever produces,
// and only the Done state reaches it.
func (o *Orchestrator) emitMerged(segments artifact.Artifact) error {
	if !segments.Valid() {
		if o.rc.Debug {
			o.logger.Info("segmentation table unavailable, dry run emits nothing")
			return nil
		}
		return services.Wrap(services.ErrValidation, "arm-merge", "verify input",
			fmt.Sprintf("segmentation table %s is missing or truncated", segments.Path), nil)
	}

	file, err := os.Open(segments.Path)
	if err != nil {
		return services.Wrap(services.ErrValidation, "arm-merge", "open segments", segments.Path, err)
	}
	defer file.Close()

	if err := arms.Merge(file, o.stdout); err != nil {
		return services.Wrap(services.ErrValidation, "arm-merge", "strip arm tags", "", err)
	}
	return nil
}
