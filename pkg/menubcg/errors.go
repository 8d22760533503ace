package menubcg

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoSheets indicates the workbook contains no sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// AnalysisError represents a failure reading the input workbook.
type AnalysisError struct {
	Path  string
	Sheet string
	Stage string // "open", "sheet", "read"
	Err   error
}

func (e *AnalysisError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("analysis error in %s sheet %q (%s): %v", e.Path, e.Sheet, e.Stage, e.Err)
	}
	return fmt.Sprintf("analysis error in %s (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(path, sheet, stage string, err error) *AnalysisError {
	return &AnalysisError{
		Path:  path,
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}
