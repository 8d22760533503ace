package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/parser"
)

// TemplateHeader is the header row written to a blank input workbook.
var TemplateHeader = []any{"N. Producto", "Nombre Producto", "TPV id", "Coste", "Precio Venta", "CoS %", "Qty Sold"}

// WriteTemplate writes a blank input workbook with the canonical header row
// on a sheet named parser.DefaultSheetName.
func WriteTemplate(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", parser.DefaultSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(parser.DefaultSheetName, "A1", &TemplateHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(parser.DefaultSheetName, 1, 1, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}
