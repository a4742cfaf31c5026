package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"copycall/internal/journal"
	"copycall/internal/pipeline"
	"copycall/internal/preflight"
)

func newPlanCommand() *cobra.Command {
	var resumeDir string

	cmd := &cobra.Command{
		Use:         "plan",
		Short:       "Show the stage plan for a work directory",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Long: "Plan lists every artifact-producing stage, whether its artifact in the\n" +
			"given work directory is valid (and would be skipped on the next run),\n" +
			"and the journal's last recorded outcome for it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := os.Stat(resumeDir)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("work directory %s does not exist", resumeDir)
			}

			outcomes, err := lastOutcomes(cmd.Context(), resumeDir)
			if err != nil {
				return err
			}

			rc := pipeline.NewRunContext(resumeDir, false, preflight.Inputs{})
			rows := make([][]string, 0, 9)
			for _, sa := range rc.Artifacts() {
				outcome := outcomes[sa.Stage]
				if outcome == "" {
					outcome = "-"
				}
				rows = append(rows, []string{
					sa.Stage,
					filepath.Base(sa.Artifact.Path),
					yesNo(sa.Artifact.Valid()),
					outcome,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Stage", "Artifact", "Valid", "Last Outcome"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&resumeDir, "resume-dir", "", "Work directory to inspect")
	_ = cmd.MarkFlagRequired("resume-dir")

	return cmd
}

// lastOutcomes loads the journal's most recent outcome per stage. A work
// directory without a journal (a debug run never writes one) yields an
// empty map; plan must not create the database as a side effect.
func lastOutcomes(ctx context.Context, dir string) (map[string]string, error) {
	if _, err := os.Stat(filepath.Join(dir, journal.FileName)); err != nil {
		return nil, nil
	}

	jnl, err := journal.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer func() { _ = jnl.Close() }()

	entries, err := jnl.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	outcomes := make(map[string]string, len(entries))
	for _, entry := range entries {
		outcomes[entry.Stage] = entry.Outcome
	}
	return outcomes, nil
}
