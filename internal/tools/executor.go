package tools

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"copycall/internal/logging"
)

// Executor abstracts command execution for testability.
type Executor interface {
	// Run executes binary with args, copying the process stdout to stdout
	// (when non-nil) and forwarding each stderr line to stderrLine (when
	// non-nil). It blocks until the process exits; no timeout is applied,
	// so a hanging tool blocks the pipeline.
	Run(ctx context.Context, binary string, args []string, stdout io.Writer, stderrLine func(string)) error
}

// Option configures a tool client.
type Option func(*settings)

type settings struct {
	exec   Executor
	logger *slog.Logger
}

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(s *settings) {
		if exec != nil {
			s.exec = exec
		}
	}
}

// WithLogger routes the wrapped tools' stderr chatter to a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{exec: commandExecutor{}, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, stdout io.Writer, stderrLine func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Stdout = stdout

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if stderrLine != nil {
			stderrLine(scanner.Text())
		}
	}
	scanErr := scanner.Err()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait command: %w", err)
	}
	if scanErr != nil {
		return fmt.Errorf("scan stderr: %w", scanErr)
	}
	return nil
}
