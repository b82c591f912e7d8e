// Package main is the entry point for the repoutil tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/repoutil/cmd/repoutil/commands"
	"go.trai.ch/repoutil/internal/app"
	"go.trai.ch/repoutil/internal/core/domain"
	_ "go.trai.ch/repoutil/internal/wiring"
)

// logFormatEnv selects JSON logs when set to "json".
const logFormatEnv = "REPOUTIL_LOG_FORMAT"

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// configurableLogger is implemented by loggers whose destination and format
// can be changed after construction.
type configurableLogger interface {
	SetOutput(w io.Writer)
	SetJSON(enable bool)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	if l, ok := components.Logger.(configurableLogger); ok {
		l.SetOutput(stderr)
		l.SetJSON(os.Getenv(logFormatEnv) == "json")
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// The report already lists every inconsistency.
		if errors.Is(err, domain.ErrInconsistentPackages) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
