package output

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	categoryColors = map[models.Category]lipgloss.Color{
		models.CategoryStar:         lipgloss.Color("#2563eb"),
		models.CategoryCow:          lipgloss.Color("#16a34a"),
		models.CategoryQuestionMark: lipgloss.Color("#f59e0b"),
		models.CategoryDog:          lipgloss.Color("#ef4444"),
	}
)

// categoryColumn is the index of the Category column in tableHeader.
const categoryColumn = 7

var tableHeader = []string{"Name", "Share %", "CoS %", "Revenue", "Units", "Price", "Cost", "Category"}

// RenderTable renders classified items as a terminal table with the
// category column coloured per quadrant.
func RenderTable(items []models.ClassifiedItem) string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.Name,
			strconv.FormatFloat(it.Share*100, 'f', 1, 64),
			strconv.FormatFloat(it.Markup, 'f', 1, 64),
			strconv.FormatFloat(it.Revenue, 'f', 0, 64),
			strconv.FormatFloat(it.Quantity, 'f', -1, 64),
			strconv.FormatFloat(it.Price, 'f', 2, 64),
			strconv.FormatFloat(it.Cost, 'f', 2, 64),
			string(it.Category),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tableHeader...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == categoryColumn && row >= 0 && row < len(items) {
				if c, ok := categoryColors[items[row].Category]; ok {
					return cellStyle.Foreground(c)
				}
			}
			return cellStyle
		})

	return t.String()
}
