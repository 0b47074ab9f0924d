// Package main is the entry point for the bam analyser.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/bam/cmd/bam/commands"
	"go.trai.ch/bam/internal/app"
	"go.trai.ch/bam/internal/core/domain"
	_ "go.trai.ch/bam/internal/wiring"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer, opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		// Per-program failures are already logged by the app.
		if !errors.Is(err, domain.ErrAnalysisFailed) {
			components.Logger.Error(err)
		}
		return 1
	}
	return 0
}
