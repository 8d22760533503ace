package matrix

import (
	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

// position is the information a rule needs to place one item.
type position struct {
	item           models.ClassifiedItem
	isStar         bool
	shareThreshold float64
	costThreshold  float64
}

func (p position) highShare() bool { return p.item.Share >= p.shareThreshold }

func (p position) goodCost() bool { return p.item.MarkupRaw <= p.costThreshold }

// rule assigns category when match holds. Rules are evaluated in order and
// the first match wins.
type rule struct {
	category models.Category
	match    func(position) bool
}

var rules = []rule{
	{models.CategoryStar, func(p position) bool { return p.isStar }},
	{models.CategoryCow, func(p position) bool { return p.highShare() && p.goodCost() }},
	{models.CategoryQuestionMark, func(p position) bool { return !p.highShare() && p.goodCost() }},
	{models.CategoryDog, func(position) bool { return true }},
}

func categorize(p position) models.Category {
	for _, r := range rules {
		if r.match(p) {
			return r.category
		}
	}
	return models.CategoryDog
}

// Classify returns a copy of items with Category set. Star membership takes
// precedence over share and cost of sales.
func Classify(items []models.ClassifiedItem, stars StarSet, shareThreshold, costThreshold float64) []models.ClassifiedItem {
	out := make([]models.ClassifiedItem, len(items))
	for i, it := range items {
		it.Category = categorize(position{
			item:           it,
			isStar:         stars.Has(it.Key),
			shareThreshold: shareThreshold,
			costThreshold:  costThreshold,
		})
		out[i] = it
	}
	return out
}
