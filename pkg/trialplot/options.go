// Package trialplot consolidates trial workbooks into CSV exports and charts.
package trialplot

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/trialplot-go/pkg/trialplot/charts"
	"github.com/ukaji3/trialplot-go/pkg/trialplot/parser"
)

// UnreadablePolicy selects how a workbook that cannot be opened is handled.
type UnreadablePolicy string

const (
	// UnreadableSkip treats the workbook like one without the worksheet.
	UnreadableSkip UnreadablePolicy = "skip"
	// UnreadableFolder fails the trial folder and continues with the next.
	UnreadableFolder UnreadablePolicy = "folder"
	// UnreadableAbort stops the run.
	UnreadableAbort UnreadablePolicy = "abort"
)

// Defaults matching the laboratory directory layout.
const (
	DefaultFolderPrefix  = "Consolidate_final_results_"
	DefaultProcessingDir = "Processing"
	DefaultOutputDirName = "graficos_resultados"
	DefaultFilePrefix    = "frequency_"
)

// Options configures a pipeline run.
type Options struct {
	// RootDir holds the trial folders.
	RootDir string
	// OutputDir receives one subdirectory per trial folder.
	// Defaults to <RootDir>/graficos_resultados.
	OutputDir string
	// FolderPrefix selects trial folders by name.
	FolderPrefix string
	// ProcessingDir is the subdirectory holding the frequency workbooks.
	ProcessingDir string
	// FilePrefix selects frequency workbooks by name.
	FilePrefix string
	// Extensions lists accepted workbook extensions, dot included.
	Extensions []string
	// SheetName is the worksheet read from every workbook.
	SheetName string
	// Frequencies maps workbook base names to frequency labels.
	Frequencies Frequencies
	// OnUnreadable selects the handling of workbooks that cannot be opened.
	OnUnreadable UnreadablePolicy
	// Style holds the chart presentation parameters.
	Style charts.Style
}

// DefaultOptions returns default pipeline options for root.
func DefaultOptions(root string) Options {
	return Options{
		RootDir:       root,
		FolderPrefix:  DefaultFolderPrefix,
		ProcessingDir: DefaultProcessingDir,
		FilePrefix:    DefaultFilePrefix,
		Extensions:    []string{".xlsm"},
		SheetName:     parser.DefaultSheet,
		Frequencies:   DefaultFrequencies(),
		OnUnreadable:  UnreadableFolder,
		Style:         charts.DefaultStyle(),
	}
}

// ResolvedOutputDir returns OutputDir or its default under RootDir.
func (o Options) ResolvedOutputDir() string {
	if o.OutputDir != "" {
		return o.OutputDir
	}
	return filepath.Join(o.RootDir, DefaultOutputDirName)
}

// Validate checks that the options describe a runnable pipeline.
func (o Options) Validate() error {
	if o.RootDir == "" {
		return fmt.Errorf("root directory is required")
	}
	if o.SheetName == "" {
		return fmt.Errorf("sheet name is required")
	}
	if o.ProcessingDir == "" {
		return fmt.Errorf("processing directory name is required")
	}
	if len(o.Extensions) == 0 {
		return fmt.Errorf("at least one workbook extension is required")
	}
	if len(o.Frequencies) == 0 {
		return fmt.Errorf("frequency table is empty")
	}
	switch o.OnUnreadable {
	case UnreadableSkip, UnreadableFolder, UnreadableAbort:
	default:
		return fmt.Errorf("invalid unreadable policy: %q (must be skip, folder, or abort)", o.OnUnreadable)
	}
	if o.Style.LineWidth <= 0 || o.Style.MarkerSize <= 0 {
		return fmt.Errorf("marker size and line width must be positive")
	}
	return nil
}

// matchWorkbook returns the base name of a frequency workbook file name, or
// false when the name does not follow the frequency_<N>.<ext> pattern.
func (o Options) matchWorkbook(name string) (string, bool) {
	if !strings.HasPrefix(name, o.FilePrefix) {
		return "", false
	}
	ext := filepath.Ext(name)
	for _, want := range o.Extensions {
		if strings.EqualFold(ext, want) {
			return strings.TrimSuffix(name, ext), true
		}
	}
	return "", false
}
