// Package output serialises analysis results.
package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

// CSVHeader is the header row of the classified item export.
var CSVHeader = []string{"Name", "RelativeShare", "Markup%", "Size", "Revenue", "Units", "Price", "Cost", "Category"}

// ToCSV renders classified items as comma separated lines joined by "\n".
// Embedded quotes in names are doubled; no other escaping is applied.
func ToCSV(items []models.ClassifiedItem) []byte {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, strings.Join(CSVHeader, ","))

	for _, it := range items {
		lines = append(lines, strings.Join([]string{
			strings.ReplaceAll(it.Name, `"`, `""`),
			formatNumber(it.Share),
			formatNumber(it.Markup),
			formatNumber(it.Size),
			formatNumber(it.Revenue),
			formatNumber(it.Quantity),
			formatNumber(it.Price),
			formatNumber(it.Cost),
			string(it.Category),
		}, ","))
	}

	return []byte(strings.Join(lines, "\n"))
}

// WriteCSV writes the export of items to w.
func WriteCSV(w io.Writer, items []models.ClassifiedItem) error {
	_, err := w.Write(ToCSV(items))
	return err
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
