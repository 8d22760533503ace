package matrix

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

// SortKey selects the column a table is ordered by.
type SortKey string

const (
	SortRevenue SortKey = "revenue"
	SortQty     SortKey = "qty"
	SortPrice   SortKey = "price"
	SortCost    SortKey = "cost"
	SortCoS     SortKey = "cos"
	SortShare   SortKey = "share"
	SortName    SortKey = "name"
)

// ParseSortKey validates a sort key name. Empty selects revenue.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortRevenue, nil
	case SortRevenue, SortQty, SortPrice, SortCost, SortCoS, SortShare, SortName:
		return k, nil
	default:
		return "", fmt.Errorf("invalid sort key: %s", s)
	}
}

func (k SortKey) value(it models.ClassifiedItem) float64 {
	switch k {
	case SortQty:
		return it.Quantity
	case SortPrice:
		return it.Price
	case SortCost:
		return it.Cost
	case SortCoS:
		// display value, so the table agrees with the chart
		return it.Markup
	case SortShare:
		return it.Share
	default:
		return it.Revenue
	}
}

// Sort returns a copy of items ordered by key. Names compare
// case-insensitively with Spanish collation; ties keep their order.
func Sort(items []models.ClassifiedItem, key SortKey, desc bool) []models.ClassifiedItem {
	out := make([]models.ClassifiedItem, len(items))
	copy(out, items)

	if key == SortName {
		col := collate.New(language.Spanish, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			c := col.CompareString(out[i].Name, out[j].Name)
			if desc {
				return c > 0
			}
			return c < 0
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := key.value(out[i]), key.value(out[j])
		if desc {
			return a > b
		}
		return a < b
	})
	return out
}

// Search returns the items whose name contains query, ignoring case.
// An empty query matches nothing.
func Search(items []models.ClassifiedItem, query string) []models.ClassifiedItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []models.ClassifiedItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			out = append(out, it)
		}
	}
	return out
}
