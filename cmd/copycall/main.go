package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"copycall/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			if services.IsFatalUsage(err) {
				fmt.Fprintln(os.Stderr, "run 'copycall run --help' for usage")
			}
		}
		os.Exit(1)
	}
}
