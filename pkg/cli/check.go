package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/valid/pkg/async"
	"github.com/dmitrymomot/valid/pkg/config"
	"github.com/dmitrymomot/valid/pkg/constraint"
	"github.com/dmitrymomot/valid/pkg/executor"
	"github.com/dmitrymomot/valid/pkg/logger"
	"github.com/dmitrymomot/valid/pkg/messages"
	"github.com/dmitrymomot/valid/pkg/origin"
	"github.com/dmitrymomot/valid/pkg/redis"
	"github.com/dmitrymomot/valid/pkg/validator"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate the fields of a form document",
		Description: `Validate every field of a form against its rules and print the outcome.

Messages come from a catalog file (--messages) or a Redis hash
(--redis-url and --redis-hash, or VALID_REDIS_URL and VALID_REDIS_HASH).
The execution strategy is read from VALID_STRATEGY and VALID_POOL_SIZE
unless set on the command line.

Exits with code 1 when at least one field is not valid.`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "form",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "form document path (yaml or json)",
			},
			messagesFlag(false),
			&cli.StringFlag{
				Name:  "strategy",
				Usage: fmt.Sprintf("execution strategy (%s, %s, %s)", executor.StrategyInline, executor.StrategySingle, executor.StrategyPool),
			},
			&cli.IntFlag{
				Name:  "pool-size",
				Usage: "workers of the pool strategy; 0 means GOMAXPROCS",
			},
			formatFlag(),
		}, redisFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := Format(cmd.String("format"))
			if format.IsUnknown() {
				return fmt.Errorf("%w: %q, valid formats are: %v", ErrUnknownFormat, format, SupportedFormats())
			}

			log, err := newLogger(cmd)
			if err != nil {
				return err
			}

			form, err := LoadForm(cmd.String("form"))
			if err != nil {
				return err
			}

			catalog, err := loadCatalog(ctx, cmd)
			if err != nil {
				return fmt.Errorf("failed to load messages: %w", err)
			}

			entries, err := form.Build(catalog)
			if err != nil {
				return err
			}

			cfg, err := validatorConfig(cmd)
			if err != nil {
				return err
			}

			aggregate, err := Check(ctx, entries, cfg, log)
			if err != nil {
				return err
			}

			report := NewReport(entries, aggregate)
			if err := report.Write(cmd.Root().Writer, format); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			if !report.Valid() {
				return cli.Exit("", ExitNotValid)
			}
			return nil
		},
	}
}

// Check validates entries as one collection on a dedicated origin loop and
// waits for the aggregate.
func Check(ctx context.Context, entries []Entry, cfg validator.Config, log *slog.Logger) (validator.Aggregate, error) {
	if err := ctx.Err(); err != nil {
		return validator.Aggregate{}, fmt.Errorf("%w: %w", ErrValidationAborted, err)
	}

	loop := origin.NewLoop(origin.WithName("check"), origin.WithLogger(log))
	loopCtx, stop := context.WithCancel(ctx)
	stopped := make(chan error, 1)
	go func() { stopped <- loop.Run(loopCtx) }()
	defer func() {
		stop()
		if err := <-stopped; err != nil {
			log.WarnContext(ctx, "origin loop stopped with error", logger.Error(err))
		}
	}()

	v, err := validator.NewFromConfig(loop, cfg,
		validator.WithName("check"),
		validator.WithLogger(log),
	)
	if err != nil {
		return validator.Aggregate{}, err
	}
	defer v.Close()

	bulk, err := validator.NewBulk(v)
	if err != nil {
		return validator.Aggregate{}, err
	}

	items := make(map[constraint.Value]*constraint.Set, len(entries))
	for _, e := range entries {
		items[e.Value] = e.Set
	}

	var future *async.Future[validator.Aggregate]
	if err := origin.Do(ctx, loop, func(taskCtx context.Context) {
		future = bulk.ValidateCollectionAsync(taskCtx, items)
	}); err != nil {
		return validator.Aggregate{}, fmt.Errorf("%w: %w", ErrValidationAborted, err)
	}

	aggregate, err := future.AwaitContext(ctx)
	if err != nil {
		return validator.Aggregate{}, fmt.Errorf("%w: %w", ErrValidationAborted, err)
	}
	return aggregate, nil
}

func loadCatalog(ctx context.Context, cmd *cli.Command) (*messages.Catalog, error) {
	if path := cmd.String("messages"); path != "" {
		return messages.LoadFile(ctx, path)
	}

	cfg, err := redisConfig(cmd)
	if err != nil {
		return nil, err
	}
	if !cfg.Enabled() {
		return nil, ErrNoMessageSource
	}
	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer client.Close()
	return messages.LoadRedis(ctx, client, cfg.Hash)
}

func redisConfig(cmd *cli.Command) (redis.Config, error) {
	var cfg redis.Config
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	if cmd.IsSet("redis-url") {
		cfg.URL = cmd.String("redis-url")
	}
	if cmd.IsSet("redis-hash") {
		cfg.Hash = cmd.String("redis-hash")
	}
	return cfg, nil
}

func validatorConfig(cmd *cli.Command) (validator.Config, error) {
	var cfg validator.Config
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	if cmd.IsSet("strategy") {
		s, err := executor.ParseStrategy(cmd.String("strategy"))
		if err != nil {
			return cfg, err
		}
		cfg.Strategy = s
	}
	if cmd.IsSet("pool-size") {
		cfg.PoolSize = int(cmd.Int("pool-size"))
	}
	return cfg, nil
}
