package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/trialplot-go/pkg/trialplot"
	"github.com/ukaji3/trialplot-go/pkg/trialplot/charts"
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process every trial folder under the root directory",
		Args:  cobra.NoArgs,
		RunE:  runPipeline,
	}

	defaults := charts.DefaultStyle()
	cmd.Flags().String(keyRoot, ".", "Root directory holding the trial folders")
	cmd.Flags().StringP(keyOutput, "o", "", "Output directory (default: <root>/"+trialplot.DefaultOutputDirName+")")
	cmd.Flags().String(keyPrefix, trialplot.DefaultFolderPrefix, "Trial folder name prefix")
	cmd.Flags().String(keySheet, "", "Worksheet to read (default: Promedios)")
	cmd.Flags().String(keyProcessingDir, trialplot.DefaultProcessingDir, "Subdirectory holding the frequency workbooks")
	cmd.Flags().StringSlice(keyExt, nil, "Workbook extensions (default: .xlsm)")
	cmd.Flags().String(keyOnUnreadable, string(trialplot.UnreadableFolder), "Unreadable workbook handling: skip, folder, or abort")
	cmd.Flags().Float64(keyMarkerSize, defaults.MarkerSize, "Marker size in points")
	cmd.Flags().Float64(keyLineWidth, defaults.LineWidth, "Line width in points")
	cmd.Flags().String(keyReport, "", "Write the run report as JSON to this file")
	cmd.Flags().Bool("pretty", false, "Pretty-print the JSON report")
	return cmd
}

func runPipeline(cmd *cobra.Command, args []string) error {
	v, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	opts, err := loadOptions(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	report, err := trialplot.New(opts, logger).Run(cmd.Context())
	if report != nil {
		printReport(cmd.OutOrStdout(), report)
		if path := v.GetString(keyReport); path != "" {
			if werr := writeReportFile(path, report, v.GetBool("pretty")); werr != nil {
				logger.Error().Err(werr).Str("path", path).Msg("Failed to write report")
			}
		}
	}
	if err != nil {
		logger.Error().Err(err).Msg("Run aborted")
		return err
	}

	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d trial folder(s) failed", len(failed))
	}
	return nil
}

// printReport writes one status line per trial folder.
func printReport(w io.Writer, report *trialplot.Report) {
	for _, f := range report.Folders {
		switch f.Status {
		case trialplot.StatusOK:
			fmt.Fprintf(w, "✅ Analysis completed for folder: %s\n", f.Folder)
		case trialplot.StatusNoData:
			fmt.Fprintf(w, "❌ No valid data found for folder: %s\n", f.Folder)
		default:
			fmt.Fprintf(w, "❌ Processing failed for folder: %s (%v)\n", f.Folder, f.Err)
		}
	}
}

type folderJSON struct {
	Folder      string   `json:"folder"`
	OutputDir   string   `json:"output_dir"`
	Status      string   `json:"status"`
	Frequencies []string `json:"frequencies,omitempty"`
	Rows        int      `json:"rows"`
	CSVFiles    []string `json:"csv_files,omitempty"`
	Charts      []string `json:"charts,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type reportJSON struct {
	RunID   string       `json:"run_id"`
	Folders []folderJSON `json:"folders"`
}

// reportToJSON serializes a run report.
func reportToJSON(report *trialplot.Report, pretty bool) ([]byte, error) {
	out := reportJSON{RunID: report.RunID, Folders: make([]folderJSON, 0, len(report.Folders))}
	for _, f := range report.Folders {
		fj := folderJSON{
			Folder:      f.Folder,
			OutputDir:   f.OutputDir,
			Status:      string(f.Status),
			Frequencies: f.Frequencies,
			Rows:        f.Rows,
			CSVFiles:    f.CSVFiles,
			Charts:      f.Charts,
		}
		if f.Err != nil {
			fj.Error = f.Err.Error()
		}
		out.Folders = append(out.Folders, fj)
	}
	if pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

func writeReportFile(path string, report *trialplot.Report, pretty bool) error {
	data, err := reportToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
