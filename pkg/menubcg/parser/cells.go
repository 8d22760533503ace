package parser

import (
	"strconv"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the sheet looked up first when reading a workbook.
const DefaultSheetName = "DatosVentas"

// SelectSheet returns the preferred sheet when the workbook has it,
// otherwise the first sheet. It returns false for a workbook without sheets.
func SelectSheet(f *excelize.File, preferred string) (string, bool) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", false
	}
	if preferred != "" {
		if idx, err := f.GetSheetIndex(preferred); err == nil && idx >= 0 {
			return preferred, true
		}
	}
	return sheets[0], true
}

// ExtractRows reads every row of a sheet as raw cells.
// Cells stored as numbers come back as float64, everything else as string.
// Empty cells are "" so positional column indexes stay valid.
func ExtractRows(f *excelize.File, sheetName string) ([][]models.RawCell, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([][]models.RawCell, 0, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cells := make([]models.RawCell, len(row))

		for colIdx, cellValue := range row {
			if cellValue == "" {
				cells[colIdx] = ""
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				cells[colIdx] = cellValue
				continue
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				cells[colIdx] = cellValue
				continue
			}
			cells[colIdx] = parseValue(cellValue, cellType)
		}

		result = append(result, cells)
	}

	return result, nil
}

// parseValue returns float64 for numeric cells and the original string otherwise.
// Untyped cells are numeric in OOXML; formulas carry their cached value.
func parseValue(s string, cellType excelize.CellType) models.RawCell {
	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber, excelize.CellTypeFormula:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
