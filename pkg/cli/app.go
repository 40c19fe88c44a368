package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/valid/pkg/config"
	"github.com/dmitrymomot/valid/pkg/logger"
)

// Process exit codes returned by Run.
const (
	ExitOK       = 0
	ExitNotValid = 1
	ExitError    = 2
)

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"o"},
		Value:   string(FormatTable),
		Usage:   fmt.Sprintf("output format (%v)", SupportedFormats()),
	}
}

func messagesFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "messages",
		Aliases:  []string{"m"},
		Required: required,
		Usage:    "message catalog file (yaml or json)",
	}
}

func redisFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "redis-url",
			Usage: "redis URL of the message catalog store; overrides VALID_REDIS_URL",
		},
		&cli.StringFlag{
			Name:  "redis-hash",
			Usage: "redis hash holding the message catalog; overrides VALID_REDIS_HASH",
		},
	}
}

// NewApp builds the valid command tree. Exit codes are left to the caller:
// the returned command never terminates the process.
func NewApp(version string) *cli.Command {
	return &cli.Command{
		Name:                  "valid",
		Usage:                 "Check values against declarative constraint sets",
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "dotenv files to load before reading configuration",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error); overrides VALID_LOG_LEVEL",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text, json); overrides VALID_LOG_FORMAT",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if files := cmd.StringSlice("env-file"); len(files) > 0 {
				if err := config.LoadEnv(files...); err != nil {
					return ctx, err
				}
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			checkCmd(),
			messagesCmd(),
			rulesCmd(),
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// Run executes the application with args and returns the process exit code.
func Run(ctx context.Context, version string, args []string, stdout, stderr io.Writer) int {
	app := NewApp(version)
	app.Writer = stdout
	app.ErrWriter = stderr

	err := app.Run(ctx, args)
	if err == nil {
		return ExitOK
	}

	var exit cli.ExitCoder
	if errors.As(err, &exit) {
		if msg := exit.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return exit.ExitCode()
	}
	fmt.Fprintln(stderr, "error:", err)
	return ExitError
}

// newLogger reads logger settings from the environment and applies the
// command line overrides. Logs go to the command's error writer.
func newLogger(cmd *cli.Command) (*slog.Logger, error) {
	var cfg logger.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	if cmd.IsSet("log-level") {
		cfg.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Format = cmd.String("log-format")
	}
	return logger.NewFromConfig(cfg, logger.WithOutput(cmd.Root().ErrWriter))
}
