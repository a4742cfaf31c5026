package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUsage        = errors.New("usage error")
	ErrEnvironment  = errors.New("environment error")
	ErrSanity       = errors.New("sanity check error")
	ErrValidation   = errors.New("validation error")
	ErrExternalTool = errors.New("external tool error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above. Every category is fatal: main prints
// the message and exits non-zero, nothing is recovered internally.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatalUsage reports whether the error stems from the command line or
// missing input files rather than a stage that actually ran.
func IsFatalUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
