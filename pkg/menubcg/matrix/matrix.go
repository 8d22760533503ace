package matrix

import (
	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

// Build runs the full derivation over items: metrics, Stars, thresholds,
// axis domains and classification. It is rebuilt from scratch on every call.
func Build(items []models.LineItem, cfg models.ThresholdConfig) models.Matrix {
	derived := DeriveMetrics(items, cfg)
	stars, keys := SelectStars(derived, cfg)
	shareThreshold := ShareThreshold(derived, stars)
	costThreshold := cfg.CostOfSalesThresholdPct

	x, y := ComputeAxisDomains(derived, shareThreshold, costThreshold, cfg.UseLogarithmicShareAxis)
	classified := Classify(derived, stars, shareThreshold, costThreshold)

	counts := make(map[models.Category]int, len(models.Categories))
	for _, c := range models.Categories {
		counts[c] = 0
	}
	for _, it := range classified {
		counts[it.Category]++
	}

	return models.Matrix{
		Items:          classified,
		StarKeys:       keys,
		ShareThreshold: shareThreshold,
		CostThreshold:  costThreshold,
		XDomain:        x,
		YDomain:        y,
		Centers:        QuadrantCenters(x, y, shareThreshold, costThreshold, cfg.UseLogarithmicShareAxis),
		Counts:         counts,
	}
}
