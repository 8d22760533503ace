package matrix

import (
	"sort"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

// cutoffEpsilon keeps float noise from flipping the admission of an item that
// lands exactly on the cutoff.
const cutoffEpsilon = 1e-9

// StarSet is the set of product ids admitted as Stars.
type StarSet map[string]struct{}

// Has reports whether key is a Star.
func (s StarSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// SelectStars returns the items that make up the top topRevenuePct of revenue.
//
// Candidates are sorted by descending revenue and admitted while the revenue
// accumulated before them is below the cutoff. Candidates tied with the last
// admitted revenue are admitted too. With the cost guard on, only items within
// the CoS threshold are candidates. The keys slice lists Stars in admission
// order.
func SelectStars(items []models.ClassifiedItem, cfg models.ThresholdConfig) (StarSet, []string) {
	set := StarSet{}
	keys := []string{}

	candidates := make([]models.ClassifiedItem, 0, len(items))
	for _, it := range items {
		if cfg.StarRequiresCostGuard && it.MarkupRaw > cfg.CostOfSalesThresholdPct {
			continue
		}
		candidates = append(candidates, it)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Revenue > candidates[j].Revenue
	})

	var total float64
	for _, c := range candidates {
		total += c.Revenue
	}
	if total == 0 {
		total = 1
	}
	limit := clamp(cfg.TopRevenuePct, 0, 100) / 100

	admit := func(c models.ClassifiedItem) {
		if !set.Has(c.Key) {
			keys = append(keys, c.Key)
		}
		set[c.Key] = struct{}{}
	}

	var cum float64
	i := 0
	for ; i < len(candidates); i++ {
		if cum/total >= limit-cutoffEpsilon {
			break
		}
		admit(candidates[i])
		cum += candidates[i].Revenue
	}

	if i > 0 {
		cut := candidates[i-1].Revenue
		for ; i < len(candidates) && candidates[i].Revenue == cut; i++ {
			admit(candidates[i])
		}
	}

	return set, keys
}
