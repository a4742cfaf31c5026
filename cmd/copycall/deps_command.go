package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"copycall/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check the configured external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.Check(deps.FromConfig(cfg))
			rows := make([][]string, 0, len(statuses))
			missing := 0
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = status.Detail
					missing++
				}
				rows = append(rows, []string{status.Name, status.Target, state})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Dependency", "Target", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			if missing > 0 {
				return fmt.Errorf("%d of %d dependencies unavailable", missing, len(statuses))
			}
			return nil
		},
	}
}
