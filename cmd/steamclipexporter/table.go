package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/bapplebo/steamclipexporter/internal/pipeline"
)

func printSummary(w io.Writer, summary pipeline.Summary) {
	if summary.Total() == 0 {
		fmt.Fprintln(w, "No clip directories found.")
		return
	}

	if stdoutIsTerminal() {
		fmt.Fprintln(w, renderSummaryTable(summary))
	} else {
		for _, res := range summary.Results {
			fmt.Fprintf(w, "%s\t%s\t%s\n", res.ClipDir, res.Outcome, resultDetail(res))
		}
	}
	fmt.Fprintf(w, "%d exported, %d skipped, %d failed\n",
		summary.Completed, summary.Skipped, summary.Failed)
}

func renderSummaryTable(summary pipeline.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Clip", "Outcome", "Detail"})

	for _, res := range summary.Results {
		tw.AppendRow(table.Row{res.ClipDir, string(res.Outcome), resultDetail(res)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func resultDetail(res pipeline.Result) string {
	switch {
	case res.Err != nil && res.Stage != "":
		return fmt.Sprintf("%s: %v", res.Stage, res.Err)
	case res.Err != nil:
		return res.Err.Error()
	default:
		return res.Output
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
