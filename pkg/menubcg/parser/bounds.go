package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
	"github.com/xuri/excelize/v2"
)

// Bounds locates the used range of a sheet.
type Bounds struct {
	// Row is the 1-based sheet row of the first used row (0 when empty).
	Row int
	// Col is the 1-based sheet column of the first used column (0 when empty).
	Col int
	// Ref is the A1-style range, e.g. "B2:H9".
	Ref string
}

// TrimToBounds drops the empty rows above and the empty columns left of the
// data so that the header is the first row.
func TrimToBounds(rows [][]models.RawCell) ([][]models.RawCell, Bounds) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, Bounds{}
	}

	trimmed := make([][]models.RawCell, 0, maxRow-minRow+1)
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		if minCol < len(row) {
			trimmed = append(trimmed, row[minCol:])
		} else {
			trimmed = append(trimmed, []models.RawCell{})
		}
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	return trimmed, Bounds{
		Row: minRow + 1,
		Col: minCol + 1,
		Ref: fmt.Sprintf("%s:%s", startCell, endCell),
	}
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]models.RawCell) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if isBlank(cell) {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

func isBlank(v models.RawCell) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	default:
		return false
	}
}
