package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bapplebo/steamclipexporter/internal/ledger"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show previously exported clips from the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Ledger.Enabled {
				return fmt.Errorf("ledger is disabled in configuration")
			}

			store, err := ledger.Open(cmd.Context(), cfg.Ledger.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No exports recorded yet.")
				return nil
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Clip", "App ID", "Status", "Output", "When"})
			for _, entry := range entries {
				tw.AppendRow(table.Row{
					entry.ClipDir,
					entry.AppID,
					entry.Status,
					entry.OutputPath,
					entry.CompletedAt.Local().Format(time.RFC3339),
				})
			}
			fmt.Fprintln(out, tw.Render())
			return nil
		},
	}
}
