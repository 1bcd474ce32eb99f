package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dailyepiphany/epiphany/internal/buildinfo"
	"github.com/dailyepiphany/epiphany/internal/challenge"
	"github.com/dailyepiphany/epiphany/internal/client/cli"
	"github.com/dailyepiphany/epiphany/internal/client/config"
	"github.com/dailyepiphany/epiphany/internal/logging"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "epiphany",
		Short:   "Daily Epiphany - find the profound in the mundane",
		Version: buildinfo.Version(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(replCmd())
	rootCmd.AddCommand(challengeCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() (*cli.App, error) {
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))
	return cli.NewApp(cfg, log)
}

func runREPL(ctx context.Context) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	app.Run(ctx)
	return nil
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive shell (the default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.Context())
		},
	}
}

func challengeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "challenge",
		Short: "Print today's daily challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := challenge.GetDailyChallenge(time.Now())
			fmt.Printf("%s: %s\n", today.Theme, today.Prompt)
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Write the active identity's history as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return app.ExportForIdentity(cmd.Context(), path)
		},
	}
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build metadata",
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(os.Stdout)
		},
	}
}
