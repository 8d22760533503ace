package ingest

import (
	"errors"
	"strings"
)

var (
	// ErrEmptySheet indicates the sheet has no rows at all.
	ErrEmptySheet = errors.New("empty sheet")
	// ErrMissingRequiredColumns indicates the header lacks a required field.
	ErrMissingRequiredColumns = errors.New("missing required columns")
	// ErrNoValidRows indicates every data row was rejected.
	ErrNoValidRows = errors.New("no valid rows")
)

// MissingColumnsError names the required fields absent from the header.
type MissingColumnsError struct {
	Fields []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Fields, ", ")
}

// Is reports whether target is ErrMissingRequiredColumns.
func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingRequiredColumns
}
