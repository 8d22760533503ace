package menubcg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/ingest"
	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

// writeSalesWorkbook saves a workbook with an intro sheet and a sales sheet
// whose table starts at B2.
func writeSalesWorkbook(t *testing.T, header []any, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Intro"))
	require.NoError(t, f.SetCellValue("Intro", "A1", "Weekly sales export"))

	_, err := f.NewSheet("DatosVentas")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("DatosVentas", "B2", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(2, i+3)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("DatosVentas", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var salesHeader = []any{"N. Producto", "Nombre Producto", "TPV id", "Coste", "Precio Venta", "CoS %", "Qty Sold"}

func TestAnalyze(t *testing.T) {
	path := writeSalesWorkbook(t, salesHeader, [][]any{
		{1001, "Black Cod", "T-1", 18, 36, 50, 260},
		{1002, "Sushi Deluxe", "T-2", 22, 20.5, "", 200},
		{1003, "Wagyu Gyoza", "T-3", 3, 14, "", 320},
		{1004, "Spicy Edamame", "T-4", "1,1", "7", "", 500},
		{1005, "Mochi", "T-5", 1.8, 6, "", 90},
		{"1005", "Mochi", "", "1,8", "6,00", "", "90"},
		{1006, "Ghost", "", 2, "", "", 10},
	})

	a, err := Analyze(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "sales.xlsx", a.BookName)
	assert.Equal(t, "DatosVentas", a.SheetName)
	assert.Equal(t, "B2:H9", a.DataRange)

	require.Len(t, a.Ingest.Items, 5)
	mochi := a.Ingest.Items[4]
	assert.Equal(t, "1005", mochi.ProductID)
	assert.Equal(t, 180.0, mochi.Quantity)
	assert.Equal(t, 7, mochi.SourceRow)

	assert.Equal(t, 1, a.Ingest.Skipped.Total)
	assert.Equal(t, []int{9}, a.Ingest.Skipped.Rows)

	want := map[string]models.Category{
		"1001": models.CategoryDog,
		"1002": models.CategoryDog,
		"1003": models.CategoryStar,
		"1004": models.CategoryQuestionMark,
		"1005": models.CategoryDog,
	}
	for _, it := range a.Matrix.Items {
		assert.Equal(t, want[it.Key], it.Category, it.Name)
	}
}

func TestAnalyzeFallsBackToFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &salesHeader))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{7, "Ramen", "", 2, 12, "", 30}))
	path := filepath.Join(t.TempDir(), "first.xlsx")
	require.NoError(t, f.SaveAs(path))

	a, err := Analyze(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", a.SheetName)
	require.Len(t, a.Matrix.Items, 1)
	assert.Equal(t, models.CategoryStar, a.Matrix.Items[0].Category)
}

func TestAnalyzeMissingColumn(t *testing.T) {
	path := writeSalesWorkbook(t,
		[]any{"N. Producto", "Nombre Producto", "Coste", "Qty Sold"},
		[][]any{{1001, "Black Cod", 18, 260}},
	)

	a, err := Analyze(path, DefaultOptions())
	require.ErrorIs(t, err, ingest.ErrMissingRequiredColumns)
	assert.Contains(t, err.Error(), "price")

	require.NotNil(t, a)
	assert.Empty(t, a.Ingest.Items)
	assert.Empty(t, a.Matrix.Items)
	assert.Equal(t, "DatosVentas", a.SheetName)
}

func TestAnalyzeFileErrors(t *testing.T) {
	_, err := Analyze(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)

	var ae *AnalysisError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "open", ae.Stage)

	bogus := filepath.Join(t.TempDir(), "bogus.xlsx")
	require.NoError(t, os.WriteFile(bogus, []byte("not a workbook"), 0644))
	_, err = Analyze(bogus, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestAnalyzeRowsEmpty(t *testing.T) {
	a, err := AnalyzeRows(nil, DefaultOptions())
	assert.ErrorIs(t, err, ingest.ErrEmptySheet)
	require.NotNil(t, a)
	assert.Empty(t, a.Matrix.Items)
	assert.Equal(t, models.Domain{Lo: -25, Hi: 75}, a.Matrix.YDomain)
}

func TestAnalyzeInvalidConfig(t *testing.T) {
	opts := DefaultOptions()
	opts.Config.TopRevenuePct = 120

	_, err := AnalyzeRows(nil, opts)
	assert.ErrorIs(t, err, models.ErrInvalidConfig)

	_, err = Reclassify(DemoItems(), opts.Config)
	assert.ErrorIs(t, err, models.ErrInvalidConfig)
}

func TestReclassifyGrowsStars(t *testing.T) {
	cfg := models.DefaultThresholdConfig()
	cfg.StarRequiresCostGuard = false

	low, err := Reclassify(DemoItems(), cfg)
	require.NoError(t, err)

	cfg.TopRevenuePct = 75
	high, err := Reclassify(DemoItems(), cfg)
	require.NoError(t, err)

	assert.Subset(t, high.StarKeys, low.StarKeys)
	assert.Greater(t, len(high.StarKeys), len(low.StarKeys))
}

func TestDemoAnalysis(t *testing.T) {
	a, err := DemoAnalysis(models.DefaultThresholdConfig())
	require.NoError(t, err)

	assert.Len(t, a.Ingest.Items, 5)
	assert.Equal(t, []string{"1003"}, a.Matrix.StarKeys)
	assert.Equal(t, 3, a.Matrix.Counts[models.CategoryDog])
}
