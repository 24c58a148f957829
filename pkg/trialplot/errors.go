package trialplot

import (
	"errors"
	"fmt"

	"github.com/ukaji3/trialplot-go/pkg/trialplot/parser"
)

// ErrUnreadable indicates a workbook that could not be opened or read.
var ErrUnreadable = parser.ErrUnreadable

// ErrNoData indicates a trial folder without any usable frequency table.
var ErrNoData = errors.New("no valid data")

// LoadError represents a failure while processing a trial folder.
type LoadError struct {
	Folder string
	Path   string
	Stage  string // "read", "csv", "charts"
	Err    error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("trial folder %q (%s): %v", e.Folder, e.Stage, e.Err)
	}
	return fmt.Sprintf("trial folder %q (%s) %s: %v", e.Folder, e.Stage, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(folder, stage, path string, err error) *LoadError {
	return &LoadError{
		Folder: folder,
		Path:   path,
		Stage:  stage,
		Err:    err,
	}
}
