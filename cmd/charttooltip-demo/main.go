package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	tooltip "github.com/siongui/gopherjs-charttooltip"
	"github.com/siongui/gopherjs-charttooltip/internal/demo"
)

// Version information set at build time.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "charttooltip-demo",
		Short: "Serve a live chart with a tooltip",
		Long: `charttooltip-demo serves a Chartist line chart decorated with the
tooltip from example/, compiled with GopherJS. New series are pushed over
a WebSocket so the chart keeps redrawing under the pointer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd(), checkCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var (
		cfg     demo.Config
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo server",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			s, err := demo.NewServer(cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringVar(&cfg.ScriptPath, "script", "", "GopherJS build of example/ to serve as /app.js")
	cmd.Flags().StringVar(&cfg.OptionsPath, "options", "", "YAML tooltip options file")
	cmd.Flags().DurationVar(&cfg.Interval, "interval", 2*time.Second, "series update interval, 0 to disable")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 1, "random walk seed")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <options.yaml>",
		Short: "Validate a tooltip options file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := tooltip.LoadOptions(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: cssClass=%s hideDelay=%dms offset=(%g,%g) offsetCollision=(%g,%g)\n",
				opts.CSSClass, opts.HideDelay, opts.Offset.X, opts.Offset.Y, opts.OffsetCollision.X, opts.OffsetCollision.Y)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "charttooltip-demo", version)
		},
	}
}
