// Package menubcg classifies restaurant menu items on a growth-share matrix
// from a sales spreadsheet.
package menubcg

import (
	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
	"github.com/ukaji3/menubcg-go/pkg/menubcg/parser"
)

// Options configures analysis behavior.
type Options struct {
	// SheetName is the sheet read first; the first sheet is used when absent.
	SheetName string
	// Config holds the classification thresholds.
	Config models.ThresholdConfig
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		SheetName: parser.DefaultSheetName,
		Config:    models.DefaultThresholdConfig(),
	}
}
