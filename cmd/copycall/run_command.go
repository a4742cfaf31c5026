package main

import (
	"strings"

	"github.com/spf13/cobra"

	"copycall/internal/journal"
	"copycall/internal/logging"
	"copycall/internal/pipeline"
	"copycall/internal/preflight"
	"copycall/internal/services"
	"copycall/internal/stage"
	"copycall/internal/tools"
	"copycall/internal/workdir"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		inputs     preflight.Inputs
		scratchDir string
		resumeDir  string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the copy-number calling pipeline",
		Long: "Run executes every pipeline stage against a work directory. A stage\n" +
			"whose output already exists and is valid is skipped, so rerunning with\n" +
			"--resume-dir picks up where a failed run stopped. With --debug the\n" +
			"commands are printed but nothing executes and nothing is written.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			workDir, err := resolveWorkDir(scratchDir, resumeDir, debug)
			if err != nil {
				return err
			}

			logWorkDir := workDir
			if debug {
				logWorkDir = ""
			}
			logger, err := logging.ForRun(cfg.Logging.Level, cfg.Logging.Format, logWorkDir)
			if err != nil {
				return err
			}
			logger.Info("work directory selected",
				logging.String("work_dir", workDir),
				logging.Bool("debug", debug))

			if !debug {
				lock, lockErr := workdir.Acquire(workDir)
				if lockErr != nil {
					return lockErr
				}
				defer func() { _ = lock.Unlock() }()
			}

			samtools, err := tools.NewSamtools(cfg.Tools.Samtools, tools.WithLogger(logger))
			if err != nil {
				return err
			}
			varscan, err := tools.NewVarScan(cfg.Tools.Java, cfg.Tools.VarScanJar, tools.WithLogger(logger))
			if err != nil {
				return err
			}
			rhelper, err := tools.NewRHelper(cfg.Tools.Rscript, cfg.Tools.ArmSplitScript, cfg.Tools.SegmentScript, tools.WithLogger(logger))
			if err != nil {
				return err
			}

			failures := preflight.Failed(preflight.RunAll(cmd.Context(), cfg, inputs, samtools))
			if len(failures) > 0 {
				if !debug {
					return services.Wrap(services.ErrEnvironment, "", "preflight",
						strings.Join(failures, "; "), nil)
				}
				for _, failure := range failures {
					logger.Warn("preflight check failed, dry run continues",
						logging.String("check", failure))
				}
			}

			var recorder stage.Recorder
			if !debug {
				jnl, openErr := journal.Open(workDir)
				if openErr != nil {
					logger.Warn("journal unavailable, continuing without it", logging.Error(openErr))
				} else {
					defer func() { _ = jnl.Close() }()
					recorder = jnl
				}
			}

			rc := pipeline.NewRunContext(workDir, debug, inputs)
			runner := stage.NewRunner(logger, recorder, debug)
			orchestrator := pipeline.New(rc, pipeline.Toolset{
				Samtools: samtools,
				VarScan:  varscan,
				R:        rhelper,
			}, runner, logger, cmd.OutOrStdout())

			return orchestrator.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&inputs.ControlBAM, "control-bam", "", "Control (normal) alignment file")
	cmd.Flags().StringVar(&inputs.TumorBAM, "tumor-bam", "", "Tumor alignment file")
	cmd.Flags().StringVar(&inputs.Reference, "reference", "", "Reference genome FASTA")
	cmd.Flags().StringVar(&inputs.Centromeres, "centromeres", "", "Centromere position table")
	cmd.Flags().StringVar(&inputs.Whitelist, "whitelist", "", "Region whitelist BED file")
	cmd.Flags().StringVar(&scratchDir, "scratch-dir", "", "Existing directory to create a fresh work directory under")
	cmd.Flags().StringVar(&resumeDir, "resume-dir", "", "Prior work directory to resume")
	cmd.Flags().BoolVar(&debug, "debug", false, "Print stage commands without executing anything")

	for _, flag := range []string{"control-bam", "tumor-bam", "reference", "centromeres", "whitelist"} {
		_ = cmd.MarkFlagRequired(flag)
	}
	cmd.MarkFlagsMutuallyExclusive("scratch-dir", "resume-dir")

	return cmd
}

func resolveWorkDir(scratchDir, resumeDir string, debug bool) (string, error) {
	if debug {
		return workdir.Preview(scratchDir, resumeDir)
	}
	return workdir.Resolve(scratchDir, resumeDir)
}
