package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/valid/pkg/messages"
	"github.com/dmitrymomot/valid/pkg/redis"
)

func messagesCmd() *cli.Command {
	return &cli.Command{
		Name:  "messages",
		Usage: "Inspect and publish message catalogs",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print a message catalog",
				Description: `Print the catalog read from --messages, or from the configured
Redis hash when no file is given.`,
				Flags: append([]cli.Flag{
					messagesFlag(false),
					formatFlag(),
				}, redisFlags()...),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					format := Format(cmd.String("format"))
					if format.IsUnknown() {
						return fmt.Errorf("%w: %q, valid formats are: %v", ErrUnknownFormat, format, SupportedFormats())
					}
					catalog, err := loadCatalog(ctx, cmd)
					if err != nil {
						return fmt.Errorf("failed to load messages: %w", err)
					}
					return writeCatalog(cmd.Root().Writer, catalog, format)
				},
			},
			{
				Name:  "push",
				Usage: "Store a catalog file in Redis",
				Description: `Replace the configured Redis hash with the entries of a catalog file,
so check runs can read messages with --redis-url.`,
				Flags: append([]cli.Flag{
					messagesFlag(true),
				}, redisFlags()...),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					catalog, err := messages.LoadFile(ctx, cmd.String("messages"))
					if err != nil {
						return fmt.Errorf("failed to load messages: %w", err)
					}

					cfg, err := redisConfig(cmd)
					if err != nil {
						return err
					}
					if !cfg.Enabled() {
						return redis.ErrEmptyConnectionURL
					}
					client, err := redis.Connect(ctx, cfg)
					if err != nil {
						return err
					}
					defer client.Close()

					if err := messages.SaveRedis(ctx, client, cfg.Hash, catalog); err != nil {
						return err
					}
					fmt.Fprintf(cmd.Root().Writer, "stored %d messages in %s\n", catalog.Len(), cfg.Hash)
					return nil
				},
			},
		},
	}
}

func writeCatalog(w io.Writer, catalog *messages.Catalog, format Format) error {
	entries := make(map[string]string, catalog.Len())
	for _, key := range catalog.Keys() {
		entries[key], _ = catalog.Message(key)
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(entries)
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tMESSAGE")
		for _, key := range catalog.Keys() {
			fmt.Fprintf(tw, "%s\t%s\n", key, entries[key])
		}
		return tw.Flush()
	}
}
