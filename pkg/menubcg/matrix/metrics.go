// Package matrix derives growth-share metrics for menu items and places each
// item in a quadrant.
//
// Every function here is pure: the same items and configuration always
// produce the same output, and inputs are never modified.
package matrix

import (
	"math"
	"sort"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

// DeriveMetrics computes share, cost of sales and size for every item.
// The result is ordered by descending size, ties keeping ingestion order.
// Categories are left unassigned.
func DeriveMetrics(items []models.LineItem, cfg models.ThresholdConfig) []models.ClassifiedItem {
	if len(items) == 0 {
		return []models.ClassifiedItem{}
	}

	var totalUnits, totalRevenue float64
	for _, it := range items {
		totalUnits += it.Quantity
		totalRevenue += it.Price * it.Quantity
	}
	if totalUnits == 0 {
		totalUnits = 1
	}
	if totalRevenue == 0 {
		totalRevenue = 1
	}

	out := make([]models.ClassifiedItem, 0, len(items))
	for _, it := range items {
		revenue := it.Price * it.Quantity

		share := revenue / totalRevenue
		if cfg.ShareBasis == models.ShareBasisUnits {
			share = it.Quantity / totalUnits
		}

		var markupRaw float64
		if it.Price > 0 {
			markupRaw = it.Cost / it.Price * 100
		}

		size := revenue
		if cfg.SizeMetric == models.SizeMargin {
			size = math.Max(0, (it.Price-it.Cost)*it.Quantity)
		}

		out = append(out, models.ClassifiedItem{
			Key:       it.ProductID,
			Name:      it.Name,
			Share:     round(share, 4),
			ShareRaw:  share,
			Markup:    round(math.Min(100, markupRaw), 1),
			MarkupRaw: markupRaw,
			Size:      size,
			Revenue:   revenue,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Cost:      it.Cost,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Size > out[j].Size
	})

	return out
}

func round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
