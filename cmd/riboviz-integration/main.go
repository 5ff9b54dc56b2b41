package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	riboviz "github.com/rasilab/riboviz"
	"github.com/rasilab/riboviz/flags"
	"github.com/rasilab/riboviz/service"
)

var (
	Version   = "v2.2.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "riboviz-integration"
	app.Usage = "riboviz Integration Test Runner"
	app.Description = "Validates riboviz workflow outputs against expected data files"
	app.Flags = flags.Flags
	app.Action = run
	app.ExitErrHandler = func(c *cli.Context, err error) {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			cli.HandleExitCoder(exitErr)
		} else if err != nil {
			if riboviz.IsRuntimeError(err) {
				// Runtime errors use exit code 2
				cli.HandleExitCoder(cli.Exit(err.Error(), 2))
			} else if riboviz.IsTestFailureError(err) {
				// Test failures use exit code 1
				cli.HandleExitCoder(cli.Exit(err.Error(), 1))
			} else {
				cli.HandleExitCoder(cli.Exit(err.Error(), 1))
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Crit("Application failed", "message", err)
	}
}

// lvlFromString matches the semantics of log.LvlFromString, which was
// removed from go-ethereum in v1.14.
func lvlFromString(lvlString string) (slog.Level, error) {
	switch lvlString {
	case "trace", "trce":
		return log.LevelTrace, nil
	case "debug", "dbug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error", "eror":
		return log.LevelError, nil
	case "crit":
		return log.LevelCrit, nil
	default:
		return log.LevelDebug, fmt.Errorf("unknown level: %v", lvlString)
	}
}

func run(ctx *cli.Context) error {
	lvl, err := lvlFromString(ctx.String(flags.LogLevel.Name))
	if err != nil {
		return riboviz.NewRuntimeError(fmt.Errorf("invalid log level: %w", err))
	}
	logger := log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, lvl, true))
	log.SetDefault(logger)

	cfg, err := riboviz.NewConfig(ctx, logger)
	if err != nil {
		return riboviz.NewRuntimeError(fmt.Errorf("failed to create config: %w", err))
	}
	cfg.Log.Debug("Config", "config", cfg)

	tester, err := riboviz.New(ctx.Context, cfg, Version)
	if err != nil {
		return riboviz.NewRuntimeError(fmt.Errorf("failed to create tester: %w", err))
	}

	// The healthz and metrics servers only matter for continuous runs.
	if !cfg.RunOnce {
		svc := service.New()
		svc.Start(ctx.Context)
		defer svc.Shutdown()
	}

	if err := tester.Start(ctx.Context); err != nil {
		return err
	}

	if !cfg.RunOnce {
		<-ctx.Context.Done()
		return tester.Stop(context.Background())
	}
	return nil
}
