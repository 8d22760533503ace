// Package ingest turns raw sheet rows into aggregated menu line items.
package ingest

import (
	"fmt"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
	"github.com/ukaji3/menubcg-go/pkg/menubcg/parser"
)

// Ingest parses rows whose first row is the header into line items.
//
// The returned result is never nil. When the sheet is empty, lacks a required
// column, or has no valid rows, the result holds no items and the error is one
// of ErrEmptySheet, *MissingColumnsError or ErrNoValidRows. Rows missing a
// product id, name, price or cost are skipped and counted, not reported as
// errors.
func Ingest(rows [][]models.RawCell) (*models.IngestResult, error) {
	return IngestAt(rows, 1)
}

// IngestAt is Ingest for rows whose header sits on the 1-based sheet row
// headerRow. Row numbers in the result refer to the sheet.
func IngestAt(rows [][]models.RawCell, headerRow int) (*models.IngestResult, error) {
	result := &models.IngestResult{
		Items:   []models.LineItem{},
		Skipped: models.SkippedSummary{ByReason: map[string]int{}},
	}

	if len(rows) == 0 {
		result.Note = "the sheet is empty."
		return result, ErrEmptySheet
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = parser.CellText(h)
	}
	idx := parser.ColumnIndex(header)

	var missing []string
	for _, f := range parser.RequiredFields {
		if _, ok := idx[f]; !ok {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		err := &MissingColumnsError{Fields: missing}
		result.Note = err.Error() + "."
		return result, err
	}

	result.Skipped.ByReason[models.ReasonRequiredFields] = 0

	byProduct := make(map[string]int)
	for i, row := range rows[1:] {
		rowNum := headerRow + 1 + i
		item, ok := parseRow(row, idx, rowNum)
		if !ok {
			result.Skipped.Total++
			result.Skipped.ByReason[models.ReasonRequiredFields]++
			result.Skipped.Rows = append(result.Skipped.Rows, rowNum)
			continue
		}

		pos, seen := byProduct[item.ProductID]
		if !seen {
			byProduct[item.ProductID] = len(result.Items)
			result.Items = append(result.Items, item)
			continue
		}
		merge(&result.Items[pos], item)
	}

	if len(result.Items) == 0 {
		result.Note = "no rows could be loaded."
		return result, ErrNoValidRows
	}

	result.Note = fmt.Sprintf("%d products loaded.", len(result.Items))
	return result, nil
}

// parseRow extracts a line item; ok is false when a required field is missing.
func parseRow(row []models.RawCell, idx map[parser.Field]int, rowNum int) (models.LineItem, bool) {
	cell := func(f parser.Field) models.RawCell {
		i, ok := idx[f]
		if !ok || i >= len(row) {
			return nil
		}
		return row[i]
	}

	item := models.LineItem{
		ProductID: parser.CellText(cell(parser.FieldProductID)),
		Name:      parser.CellText(cell(parser.FieldName)),
		POSID:     parser.CellText(cell(parser.FieldPOSID)),
		SourceRow: rowNum,
	}

	cost, costOK := parser.ParseNumber(cell(parser.FieldCost))
	price, priceOK := parser.ParseNumber(cell(parser.FieldPrice))
	if item.ProductID == "" || item.Name == "" || !costOK || !priceOK {
		return item, false
	}
	item.Cost = cost
	item.Price = price

	if qty, ok := parser.ParseNumber(cell(parser.FieldQuantity)); ok {
		item.Quantity = qty
	}
	if cos, ok := parser.ParseNumber(cell(parser.FieldCostOfSales)); ok {
		item.CostOfSalesOverride = &cos
	}

	return item, true
}

// merge folds a later occurrence of the same product into the seed record.
// Quantities add up; the later price, cost and name win.
func merge(seed *models.LineItem, next models.LineItem) {
	seed.Quantity += next.Quantity
	seed.Price = next.Price
	seed.Cost = next.Cost
	seed.Name = next.Name
	if next.POSID != "" {
		seed.POSID = next.POSID
	}
	if next.CostOfSalesOverride != nil {
		seed.CostOfSalesOverride = next.CostOfSalesOverride
	}
}
