package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/noah-isme/teacher-planner-api/cmd/plannerctl/commands"
	"github.com/noah-isme/teacher-planner-api/internal/app"
	"github.com/noah-isme/teacher-planner-api/pkg/config"
	"github.com/noah-isme/teacher-planner-api/pkg/logger"
)

func main() {
	var cli commands.CLI
	kctx := kong.Parse(&cli,
		kong.Name("plannerctl"),
		kong.Description("Inspect and edit the teacher planner from the command line."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load()
	kctx.FatalIfErrorf(err)
	cli.Apply(cfg)

	logr, err := logger.New(cfg)
	kctx.FatalIfErrorf(err)
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	planner, err := app.New(ctx, cfg, logr)
	kctx.FatalIfErrorf(err)

	kctx.BindTo(ctx, (*context.Context)(nil))
	runErr := kctx.Run(&commands.Global{App: planner, Out: os.Stdout})
	closeErr := planner.Close()
	kctx.FatalIfErrorf(runErr)
	kctx.FatalIfErrorf(closeErr)
}
