package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bapplebo/steamclipexporter/internal/config"
	"github.com/bapplebo/steamclipexporter/internal/ffmpeg"
	"github.com/bapplebo/steamclipexporter/internal/ledger"
	"github.com/bapplebo/steamclipexporter/internal/logging"
	"github.com/bapplebo/steamclipexporter/internal/naming"
	"github.com/bapplebo/steamclipexporter/internal/pipeline"
	"github.com/bapplebo/steamclipexporter/internal/steam"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var overwriteFlag bool
	var refreshFlag bool

	cmd := &cobra.Command{
		Use:   "export <clips-directory>",
		Short: "Reassemble and export every clip under a recordings directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			inputDir, err := validateDirectory(args[0])
			if err != nil {
				return err
			}
			outputDir := ""
			if outputFlag != "" {
				if outputDir, err = validateDirectory(outputFlag); err != nil {
					return err
				}
			}

			logger, err := logging.NewFromConfig(cfg, ctx.verbose())
			if err != nil {
				return err
			}

			runner, store, err := buildRunner(cfg, logger)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			summary, err := runner.Run(cmd.Context(), pipeline.Options{
				InputDir:  inputDir,
				OutputDir: outputDir,
				TempDir:   cfg.Export.TempDir,
				Overwrite: overwriteFlag || cfg.Export.Overwrite,
				Refresh:   refreshFlag || cfg.Export.Refresh,
			})
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory for exported clips (defaults to the working directory)")
	cmd.Flags().BoolVar(&overwriteFlag, "overwrite", false, "Replace existing output files")
	cmd.Flags().BoolVar(&refreshFlag, "refresh", false, "Re-export clips already recorded in the ledger")
	return cmd
}

func buildRunner(cfg *config.Config, logger *slog.Logger) (*pipeline.Runner, *ledger.Store, error) {
	client, err := steam.New(cfg.Steam.StoreBaseURL, time.Duration(cfg.Steam.RequestTimeout)*time.Second)
	if err != nil {
		return nil, nil, err
	}
	namer := naming.NewNamer(client, cfg.Steam.DefaultName, logger)

	muxer, err := ffmpeg.New(cfg.FFmpeg.Binary, logger)
	if err != nil {
		return nil, nil, err
	}

	var store *ledger.Store
	if cfg.Ledger.Enabled {
		store, err = ledger.Open(context.Background(), cfg.Ledger.Path)
		if err != nil {
			return nil, nil, err
		}
	}

	runner, err := pipeline.NewRunner(namer, muxer, store, logger)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, nil, err
	}
	return runner, store, nil
}

func validateDirectory(path string) (string, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		return "", fmt.Errorf("%q is not a valid directory path", path)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", path)
	}
	return expanded, nil
}
