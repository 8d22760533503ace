package matrix

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

// Legend returns a one-line explanation of each category under cfg.
func Legend(cfg models.ThresholdConfig) map[models.Category]string {
	cos := pct(cfg.CostOfSalesThresholdPct)

	star := fmt.Sprintf("Items making up the first %s of cumulative revenue", pct(cfg.TopRevenuePct))
	if cfg.StarRequiresCostGuard {
		star += fmt.Sprintf(" with CoS <= %s", cos)
	}

	return map[models.Category]string{
		models.CategoryStar:         star + ".",
		models.CategoryCow:          fmt.Sprintf("High popularity and low CoS (<= %s).", cos),
		models.CategoryQuestionMark: fmt.Sprintf("Low popularity and low CoS (<= %s). Try promotion or menu placement.", cos),
		models.CategoryDog:          fmt.Sprintf("High CoS (> %s). Review price or cost, or retire.", cos),
	}
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
