package tools

import (
	"context"
	"fmt"
	"os"
	"strings"

	"copycall/internal/logging"
)

// Invocation is one concrete external command. It satisfies the stage
// Action contract: Describe returns the shell-style command text emitted to
// the diagnostic stream, Run blocks until the process exits. When
// StdoutPath is set the process stdout is captured there (the redirect
// idiom most of the wrapped tools rely on); otherwise stdout is discarded
// because tools like VarScan write their result files themselves.
type Invocation struct {
	Binary     string
	Args       []string
	StdoutPath string

	set settings
}

func (inv Invocation) Describe() string {
	parts := make([]string, 0, len(inv.Args)+3)
	parts = append(parts, inv.Binary)
	parts = append(parts, inv.Args...)
	if inv.StdoutPath != "" {
		parts = append(parts, ">", inv.StdoutPath)
	}
	return strings.Join(parts, " ")
}

func (inv Invocation) Run(ctx context.Context) error {
	var stdout *os.File
	if inv.StdoutPath != "" {
		file, err := os.Create(inv.StdoutPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", inv.StdoutPath, err)
		}
		stdout = file
	}

	stderrLine := func(line string) {
		inv.set.logger.Debug("tool stderr",
			logging.String("binary", inv.Binary),
			logging.String("line", line))
	}

	var runErr error
	if stdout != nil {
		runErr = inv.set.exec.Run(ctx, inv.Binary, inv.Args, stdout, stderrLine)
		if closeErr := stdout.Close(); runErr == nil && closeErr != nil {
			runErr = fmt.Errorf("close %s: %w", inv.StdoutPath, closeErr)
		}
	} else {
		runErr = inv.set.exec.Run(ctx, inv.Binary, inv.Args, nil, stderrLine)
	}
	return runErr
}
