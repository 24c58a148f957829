package trialplot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/ukaji3/trialplot-go/pkg/trialplot/charts"
	"github.com/ukaji3/trialplot-go/pkg/trialplot/models"
	"github.com/ukaji3/trialplot-go/pkg/trialplot/output"
	"github.com/ukaji3/trialplot-go/pkg/trialplot/parser"
)

// Status is the outcome of one trial folder.
type Status string

const (
	// StatusOK means at least one frequency table was exported.
	StatusOK Status = "ok"
	// StatusNoData means no usable frequency table was found.
	StatusNoData Status = "no_data"
	// StatusFailed means an unreadable workbook or a write error stopped the folder.
	StatusFailed Status = "failed"
)

// FolderResult summarizes the processing of one trial folder.
type FolderResult struct {
	// Folder is the trial folder name.
	Folder string
	// OutputDir is where the folder's files were written.
	OutputDir string
	// Status is the folder outcome.
	Status Status
	// Frequencies lists the labels of the exported tables in discovery order.
	Frequencies []string
	// Rows is the consolidated row count.
	Rows int
	// CSVFiles lists the CSV files written, consolidated last.
	CSVFiles []string
	// Charts lists the chart names written.
	Charts []string
	// Err holds the failure cause for StatusFailed and StatusNoData.
	Err error
}

// Report is the result of a pipeline run.
type Report struct {
	// RunID identifies the run in logs.
	RunID string
	// Folders holds one entry per trial folder, in discovery order.
	Folders []FolderResult
}

// Failed returns the folders whose processing failed.
func (r *Report) Failed() []FolderResult {
	var out []FolderResult
	for _, f := range r.Folders {
		if f.Status == StatusFailed {
			out = append(out, f)
		}
	}
	return out
}

// Pipeline walks trial folders and exports their consolidated data.
type Pipeline struct {
	opts     Options
	log      zerolog.Logger
	renderer *charts.Renderer
}

// New creates a pipeline. Options are used as given; call Validate first.
func New(opts Options, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		opts:     opts,
		log:      logger,
		renderer: charts.NewRenderer(opts.Style, logger),
	}
}

// Run processes every trial folder under the root directory.
//
// A folder never stops the processing of the others, except when a workbook
// is unreadable and OnUnreadable is UnreadableAbort. Failing to list the root
// directory aborts the run.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	log := p.log.With().Str("run_id", report.RunID).Logger()

	entries, err := os.ReadDir(p.opts.RootDir)
	if err != nil {
		return report, fmt.Errorf("read root directory: %w", err)
	}
	outRoot := p.opts.ResolvedOutputDir()
	if err := os.MkdirAll(outRoot, 0755); err != nil {
		return report, fmt.Errorf("create output directory: %w", err)
	}

	log.Info().
		Str("root", p.opts.RootDir).
		Str("output", outRoot).
		Int("entries", len(entries)).
		Msg("Starting trial consolidation")

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		name := entry.Name()
		if !entry.IsDir() || !strings.HasPrefix(name, p.opts.FolderPrefix) {
			continue
		}
		procPath := filepath.Join(p.opts.RootDir, name, p.opts.ProcessingDir)
		if info, err := os.Stat(procPath); err != nil || !info.IsDir() {
			log.Debug().Str("folder", name).Msg("Skipping folder without processing directory")
			continue
		}

		result, err := p.processFolder(ctx, log, name)
		report.Folders = append(report.Folders, result)
		if err != nil {
			return report, err
		}
	}

	log.Info().Int("folders", len(report.Folders)).Int("failed", len(report.Failed())).Msg("Trial consolidation finished")
	return report, nil
}

// processFolder loads, exports and charts one trial folder.
// The returned error is non-nil only when the run must stop.
func (p *Pipeline) processFolder(ctx context.Context, parent zerolog.Logger, folder string) (FolderResult, error) {
	log := parent.With().Str("folder", folder).Logger()
	result := FolderResult{
		Folder:    folder,
		OutputDir: filepath.Join(p.opts.ResolvedOutputDir(), folder),
	}
	if err := os.MkdirAll(result.OutputDir, 0755); err != nil {
		return p.fail(log, result, NewLoadError(folder, "csv", result.OutputDir, err)), nil
	}

	procPath := filepath.Join(p.opts.RootDir, folder, p.opts.ProcessingDir)
	files, err := os.ReadDir(procPath)
	if err != nil {
		return p.fail(log, result, NewLoadError(folder, "read", procPath, err)), nil
	}

	total := &models.Consolidated{Folder: folder}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return p.fail(log, result, err), err
		}
		if file.IsDir() {
			continue
		}
		base, ok := p.opts.matchWorkbook(file.Name())
		if !ok {
			continue
		}
		label, ok := p.opts.Frequencies.Label(base)
		if !ok {
			log.Debug().Str("file", file.Name()).Msg("Skipping workbook without frequency label")
			continue
		}

		path := filepath.Join(procPath, file.Name())
		table, err := parser.LoadSheet(path, p.opts.SheetName, label)
		if err != nil {
			lerr := NewLoadError(folder, "read", path, err)
			switch p.opts.OnUnreadable {
			case UnreadableSkip:
				log.Warn().Err(err).Str("file", file.Name()).Msg("Skipping unreadable workbook")
				continue
			case UnreadableAbort:
				return p.fail(log, result, lerr), lerr
			default:
				return p.fail(log, result, lerr), nil
			}
		}
		if table.Empty() {
			log.Debug().Str("file", file.Name()).Str("sheet", p.opts.SheetName).Msg("No data in worksheet")
			continue
		}

		csvPath := filepath.Join(result.OutputDir, output.TableFileName(label))
		if err := output.WriteTableFile(csvPath, table); err != nil {
			return p.fail(log, result, NewLoadError(folder, "csv", csvPath, err)), nil
		}
		result.CSVFiles = append(result.CSVFiles, csvPath)
		result.Frequencies = append(result.Frequencies, label)
		total.Append(table)

		log.Info().
			Str("file", file.Name()).
			Str("frequency", label).
			Int("rows", table.Rows()).
			Strs("extra_columns", table.Extras()).
			Msg("Frequency table exported")
	}

	if total.Len() == 0 {
		result.Status = StatusNoData
		result.Err = NewLoadError(folder, "read", procPath, ErrNoData)
		log.Warn().Msg("No valid data found")
		return result, nil
	}

	csvPath := filepath.Join(result.OutputDir, output.ConsolidatedFile)
	if err := output.WriteConsolidatedFile(csvPath, total); err != nil {
		return p.fail(log, result, NewLoadError(folder, "csv", csvPath, err)), nil
	}
	result.CSVFiles = append(result.CSVFiles, csvPath)
	result.Rows = total.Rows()

	written, err := p.renderer.RenderAll(total, result.OutputDir)
	result.Charts = written
	if err != nil {
		return p.fail(log, result, NewLoadError(folder, "charts", result.OutputDir, err)), nil
	}

	result.Status = StatusOK
	log.Info().
		Int("tables", total.Len()).
		Int("rows", result.Rows).
		Strs("charts", written).
		Msg("Trial folder consolidated")
	return result, nil
}

func (p *Pipeline) fail(log zerolog.Logger, result FolderResult, err error) FolderResult {
	result.Status = StatusFailed
	result.Err = err
	event := log.Error().Err(err)
	var lerr *LoadError
	if errors.As(err, &lerr) {
		event = event.Str("stage", lerr.Stage)
	}
	event.Msg("Trial folder failed")
	return result
}
