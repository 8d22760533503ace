package ingest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

var header = []models.RawCell{"N. Producto", "Nombre", "TPV id", "Coste", "Precio", "CoS %", "Qty"}

func TestIngestAggregatesDuplicates(t *testing.T) {
	rows := [][]models.RawCell{
		header,
		{1001.0, "Black Cod", "T1", 18.0, 36.0, "", 200.0},
		{"1003", "Wagyu Gyoza", "", "3", "14", "21,4%", "320"},
		{"1001", "Black Cod v2", "", "19", "37,5", "", 60.0},
	}

	res, err := Ingest(rows)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	first := res.Items[0]
	assert.Equal(t, "1001", first.ProductID)
	assert.Equal(t, "Black Cod v2", first.Name)
	assert.Equal(t, "T1", first.POSID)
	assert.Equal(t, 260.0, first.Quantity)
	assert.Equal(t, 37.5, first.Price)
	assert.Equal(t, 19.0, first.Cost)
	assert.Equal(t, 2, first.SourceRow)
	assert.Nil(t, first.CostOfSalesOverride)

	second := res.Items[1]
	assert.Equal(t, "1003", second.ProductID)
	require.NotNil(t, second.CostOfSalesOverride)
	assert.InDelta(t, 21.4, *second.CostOfSalesOverride, 1e-9)

	assert.Equal(t, 0, res.Skipped.Total)
	assert.Equal(t, "2 products loaded.", res.Note)
}

func TestIngestRejectsRowsMissingRequiredFields(t *testing.T) {
	rows := [][]models.RawCell{
		header,
		{"1001", "Black Cod", "", 18.0, 36.0, "", 260.0},
		{"", "No id", "", 1.0, 2.0, "", 1.0},
		{"1002", "", "", 1.0, 2.0, "", 1.0},
		{"1004", "No price", "", 1.0, "n/a", "", 1.0},
		{"1005", "No cost", "", "", 2.0, "", 1.0},
		{"1006", "No qty", "", 1.0, 2.0, "", "lots"},
		{},
	}

	res, err := Ingest(rows)
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	assert.Equal(t, "1006", res.Items[1].ProductID)
	assert.Equal(t, 0.0, res.Items[1].Quantity)

	assert.Equal(t, 5, res.Skipped.Total)
	assert.Equal(t, 5, res.Skipped.ByReason[models.ReasonRequiredFields])
	assert.Equal(t, []int{3, 4, 5, 6, 8}, res.Skipped.Rows)
}

func TestIngestMissingRequiredColumn(t *testing.T) {
	rows := [][]models.RawCell{
		{"N. Producto", "Nombre", "Coste", "Qty"},
		{"1001", "Black Cod", 18.0, 260.0},
	}

	res, err := Ingest(rows)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRequiredColumns))

	var mce *MissingColumnsError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, []string{"price"}, mce.Fields)
	assert.Contains(t, err.Error(), "price")

	require.NotNil(t, res)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Skipped.Total)
}

func TestIngestEmptySheet(t *testing.T) {
	res, err := Ingest(nil)
	assert.ErrorIs(t, err, ErrEmptySheet)
	require.NotNil(t, res)
	assert.Empty(t, res.Items)
}

func TestIngestNoValidRows(t *testing.T) {
	rows := [][]models.RawCell{
		header,
		{"", "", "", "", "", "", ""},
		{"1001", "Black Cod", "", "x", "y", "", 1.0},
	}

	res, err := Ingest(rows)
	assert.ErrorIs(t, err, ErrNoValidRows)
	assert.NotErrorIs(t, err, ErrMissingRequiredColumns)
	require.NotNil(t, res)
	assert.Empty(t, res.Items)
	assert.Equal(t, 2, res.Skipped.Total)
	assert.Equal(t, "no rows could be loaded.", res.Note)
}

func TestIngestHeaderOnly(t *testing.T) {
	res, err := Ingest([][]models.RawCell{header})
	assert.ErrorIs(t, err, ErrNoValidRows)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Skipped.Total)
}

func TestIngestAtReportsSheetRows(t *testing.T) {
	rows := [][]models.RawCell{
		header,
		{"1001", "Black Cod", "", 18.0, 36.0, "", 260.0},
		{"1002", "Broken", "", 18.0, "", "", 1.0},
	}

	res, err := IngestAt(rows, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Items[0].SourceRow)
	assert.Equal(t, []int{6}, res.Skipped.Rows)
}
