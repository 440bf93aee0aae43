// Package cmd implements the scene2video CLI.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivlev/scene2video/internal/config"
	"github.com/ivlev/scene2video/internal/log"
)

// ExecuteContext runs the CLI.
func ExecuteContext(ctx context.Context, version string) error {
	return newRootCmd(version).ExecuteContext(ctx)
}

func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Version:           version,
		Use:               "scene2video <config.yaml>",
		Short:             "Build motion graphics videos from scene scripts",
		Long:              "Build motion graphics videos from scene scripts.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("configuration: %w", err)
			}
			defer func() {
				_ = f.Close()
			}()

			cfg, err := config.Parse(f)
			if err != nil {
				return fmt.Errorf("configuration: %w", err)
			}

			slog.SetDefault(slog.New(log.NewMsgHandler(os.Stdout, cfg.LogLevel)))
			return runBuild(cmd.Context(), cfg)
		},
	}

	exampleCmd := &cobra.Command{
		Use:               "example",
		Short:             "Print example configuration yaml",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(os.Stdout, config.Example())
			return err
		},
	}
	rootCmd.AddCommand(exampleCmd)

	rootCmd.AddCommand(newEndcardCmd())

	return rootCmd
}
