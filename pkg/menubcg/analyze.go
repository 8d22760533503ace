package menubcg

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/ingest"
	"github.com/ukaji3/menubcg-go/pkg/menubcg/matrix"
	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
	"github.com/ukaji3/menubcg-go/pkg/menubcg/parser"
	"github.com/xuri/excelize/v2"
)

// Analyze reads a sales workbook and classifies its menu items.
//
// File level failures return a nil Analysis and an *AnalysisError. Ingestion
// conditions (empty sheet, missing columns, no valid rows) return a usable
// Analysis with an empty matrix together with the ingest error.
func Analyze(path string, opts Options) (*models.Analysis, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, NewAnalysisError(path, "", "open", ErrFileNotFound)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewAnalysisError(path, "", "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	sheetName, ok := parser.SelectSheet(f, opts.SheetName)
	if !ok {
		return nil, NewAnalysisError(path, "", "sheet", ErrNoSheets)
	}
	if opts.SheetName != "" && sheetName != opts.SheetName {
		slog.Debug("preferred sheet not found, using first sheet",
			slog.String("preferred", opts.SheetName),
			slog.String("sheet", sheetName))
	}

	rows, err := parser.ExtractRows(f, sheetName)
	if err != nil {
		return nil, NewAnalysisError(path, sheetName, "read", err)
	}

	rows, bounds := parser.TrimToBounds(rows)
	slog.Debug("read sheet",
		slog.String("book", filepath.Base(path)),
		slog.String("sheet", sheetName),
		slog.String("range", bounds.Ref),
		slog.Int("rows", len(rows)))

	headerRow := bounds.Row
	if headerRow == 0 {
		headerRow = 1
	}
	a, ingestErr := analyzeRows(rows, headerRow, opts)
	a.BookName = filepath.Base(path)
	a.SheetName = sheetName
	a.DataRange = bounds.Ref
	return a, ingestErr
}

// AnalyzeRows ingests in-memory rows, the first being the header, and
// classifies the resulting items. The Analysis is never nil unless the
// configuration is invalid.
func AnalyzeRows(rows [][]models.RawCell, opts Options) (*models.Analysis, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	return analyzeRows(rows, 1, opts)
}

func analyzeRows(rows [][]models.RawCell, headerRow int, opts Options) (*models.Analysis, error) {
	res, ingestErr := ingest.IngestAt(rows, headerRow)
	if ingestErr != nil {
		slog.Warn("ingestion produced no items",
			slog.String("note", res.Note),
			slog.Int("skipped", res.Skipped.Total),
			slog.String("error", ingestErr.Error()))
	} else {
		slog.Info("ingested sales rows",
			slog.Int("products", len(res.Items)),
			slog.Int("skipped", res.Skipped.Total))
	}

	a := &models.Analysis{
		Config: opts.Config,
		Ingest: *res,
		Matrix: buildMatrix(res.Items, opts.Config),
	}
	return a, ingestErr
}

// Reclassify rebuilds the matrix for items under a new configuration.
func Reclassify(items []models.LineItem, cfg models.ThresholdConfig) (models.Matrix, error) {
	if err := cfg.Validate(); err != nil {
		return models.Matrix{}, err
	}
	return buildMatrix(items, cfg), nil
}

func buildMatrix(items []models.LineItem, cfg models.ThresholdConfig) models.Matrix {
	m := matrix.Build(items, cfg)
	slog.Debug("classified items",
		slog.Int("items", len(m.Items)),
		slog.Int("stars", len(m.StarKeys)),
		slog.Float64("share_threshold", m.ShareThreshold))
	return m
}
