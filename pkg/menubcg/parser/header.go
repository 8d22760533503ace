package parser

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field is a canonical column name.
type Field string

const (
	FieldProductID   Field = "product_id"
	FieldName        Field = "name"
	FieldPOSID       Field = "pos_id"
	FieldCost        Field = "cost"
	FieldPrice       Field = "price"
	FieldCostOfSales Field = "cos"
	FieldQuantity    Field = "qty"
)

// RequiredFields are the columns a sheet must carry to be ingested.
var RequiredFields = []Field{FieldProductID, FieldName, FieldCost, FieldPrice, FieldQuantity}

// headerAliases maps lower-cased header spellings to canonical fields.
var headerAliases = map[string]Field{
	// product number
	"n. producto":    FieldProductID,
	"n producto":     FieldProductID,
	"nº producto":    FieldProductID,
	"no. producto":   FieldProductID,
	"producto":       FieldProductID,
	"product":        FieldProductID,
	"product number": FieldProductID,
	"product no":     FieldProductID,
	"product no.":    FieldProductID,
	"product id":     FieldProductID,
	"sku":            FieldProductID,

	// product name
	"nombre producto": FieldName,
	"nombre":          FieldName,
	"product name":    FieldName,
	"name":            FieldName,
	"item":            FieldName,
	"item name":       FieldName,

	// point of sale id
	"tpv id": FieldPOSID,
	"tpvid":  FieldPOSID,
	"pos id": FieldPOSID,
	"posid":  FieldPOSID,
	"pos":    FieldPOSID,

	// unit cost
	"coste":     FieldCost,
	"costo":     FieldCost,
	"cost":      FieldCost,
	"unit cost": FieldCost,

	// sale price
	"precio vent":  FieldPrice,
	"precio venta": FieldPrice,
	"precio":       FieldPrice,
	"pvp":          FieldPrice,
	"sale price":   FieldPrice,
	"sales price":  FieldPrice,
	"price":        FieldPrice,

	// cost of sales percent
	"cos %":           FieldCostOfSales,
	"cos%":            FieldCostOfSales,
	"cos":             FieldCostOfSales,
	"cost of sales %": FieldCostOfSales,
	"cost of sales":   FieldCostOfSales,
	"food cost %":     FieldCostOfSales,

	// quantity sold
	"qty sold":      FieldQuantity,
	"qty":           FieldQuantity,
	"quantity":      FieldQuantity,
	"quantity sold": FieldQuantity,
	"units":         FieldQuantity,
	"units sold":    FieldQuantity,
	"unidades":      FieldQuantity,
	"cantidad":      FieldQuantity,
}

// foldedAliases is headerAliases keyed by accent-stripped spelling.
var foldedAliases = func() map[string]Field {
	m := make(map[string]Field, len(headerAliases))
	for k, v := range headerAliases {
		m[foldAccents(k)] = v
	}
	return m
}()

// NormalizeHeader maps a column header to its canonical field.
// Matching is case-insensitive and tolerant of accents; unknown headers
// return false.
func NormalizeHeader(header string) (Field, bool) {
	k := strings.ToLower(strings.TrimSpace(header))
	if k == "" {
		return "", false
	}
	if f, ok := headerAliases[k]; ok {
		return f, true
	}
	f, ok := foldedAliases[foldAccents(k)]
	return f, ok
}

// ColumnIndex maps each canonical field to the first column carrying it.
func ColumnIndex(header []string) map[Field]int {
	idx := make(map[Field]int, len(header))
	for i, h := range header {
		f, ok := NormalizeHeader(h)
		if !ok {
			continue
		}
		if _, seen := idx[f]; !seen {
			idx[f] = i
		}
	}
	return idx
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
