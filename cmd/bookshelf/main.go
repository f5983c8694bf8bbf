// Command bookshelf runs the bookshelf API and its maintenance tasks.
//
// Usage:
//
//	bookshelf serve
//	bookshelf migrate [up|down|status]
//	bookshelf stats <userID>
//	bookshelf token <userID>
//	bookshelf version
//
// Configuration is read from --config (or CONFIG_PATH) and the environment.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres"
	lendingrepo "github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres/lending"
	"github.com/heartmarshall/bookshelf-backend/internal/app"
	"github.com/heartmarshall/bookshelf-backend/internal/auth"
	"github.com/heartmarshall/bookshelf-backend/internal/config"
	"github.com/heartmarshall/bookshelf-backend/internal/service/statistics"
	"github.com/heartmarshall/bookshelf-backend/pkg/clock"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "bookshelf",
		Short:        "Personal book collection API",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (overrides CONFIG_PATH)")

	load := func() (*config.Config, error) {
		if configPath != "" {
			return config.LoadFrom(configPath)
		}
		return config.Load()
	}

	root.AddCommand(
		newServeCmd(load),
		newMigrateCmd(load),
		newStatsCmd(load),
		newTokenCmd(load),
		newVersionCmd(),
	)
	return root
}

type configLoader func() (*config.Config, error)

func newServeCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx, cfg)
		},
	}
}

func newMigrateCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or inspect database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := "up"
			if len(args) == 1 {
				direction = args[0]
			}

			cfg, err := load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			m, err := postgres.NewMigrator(ctx, cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer m.Close()

			out := cmd.OutOrStdout()
			switch direction {
			case "up":
				versions, err := m.Up(ctx)
				if err != nil {
					return err
				}
				if len(versions) == 0 {
					fmt.Fprintln(out, "No pending migrations.")
					return nil
				}
				for _, v := range versions {
					fmt.Fprintf(out, "Applied %d\n", v)
				}
			case "down":
				v, err := m.Down(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Rolled back %d\n", v)
			case "status":
				states, err := m.Status(ctx)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tSTATE\tSOURCE")
				for _, s := range states {
					state := "pending"
					if s.Applied {
						state = "applied"
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, state, s.Path)
				}
				return tw.Flush()
			}
			return nil
		},
	}
}

func newStatsCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <userID>",
		Short: "Print reading and lending statistics for a user as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := statistics.NewService(app.NewLogger(cfg.Log), lendingrepo.New(pool), clock.System{})
			stats, err := svc.GetUserStatistics(ctx, args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		},
	}
}

// token mints an access token for local testing against the API.
func newTokenCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:    "token <userID>",
		Short:  "Issue an access token for a user id",
		Args:   cobra.ExactArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
			token, err := jwtManager.GenerateAccessToken(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
