package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/trialplot-go/pkg/trialplot"
	"github.com/ukaji3/trialplot-go/pkg/trialplot/output"
	"github.com/ukaji3/trialplot-go/pkg/trialplot/parser"
)

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [workbook]",
		Short: "Print the normalized worksheet of one workbook as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().StringP(keyOutput, "o", "", "Output file path (default: stdout)")
	cmd.Flags().String(keySheet, parser.DefaultSheet, "Worksheet to read")
	cmd.Flags().String("frequency", "", "Frequency label (default: resolved from the file name)")
	cmd.Flags().Bool("summary", false, "Print per-column statistics instead of the rows")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	v, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	label := v.GetString("frequency")
	if label == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		freqs := trialplot.DefaultFrequencies()
		if m := v.GetStringMapString(keyFrequencies); len(m) > 0 {
			freqs = trialplot.Frequencies(m)
		}
		var ok bool
		if label, ok = freqs.Label(base); !ok {
			return fmt.Errorf("no frequency label for %s (known: %s), pass --frequency",
				filepath.Base(inputPath), strings.Join(freqs.Keys(), ", "))
		}
	}

	sheet := v.GetString(keySheet)
	table, err := parser.LoadSheet(inputPath, sheet, label)
	if err != nil {
		return err
	}
	if table.Empty() {
		return fmt.Errorf("worksheet %q has no data in %s", sheet, inputPath)
	}
	logger.Debug().
		Str("file", inputPath).
		Strs("columns", table.Names()).
		Int("rows", table.Rows()).
		Msg("Worksheet normalized")

	write := func(w io.Writer) error { return output.WriteTable(w, table) }
	if v.GetBool("summary") {
		summaries, err := output.Summarize(table)
		if err != nil {
			return err
		}
		write = func(w io.Writer) error { return output.WriteSummary(w, summaries) }
	}

	outputPath := v.GetString(keyOutput)
	if outputPath == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return f.Close()
}
