package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/matrix"
	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

// outputSettings controls how results are rendered.
type outputSettings struct {
	Format string
	Path   string
	Pretty bool
	Sort   string
	Asc    bool
	Search string
}

func thresholdConfig(v *viper.Viper) (models.ThresholdConfig, error) {
	cfg := models.ThresholdConfig{
		CostOfSalesThresholdPct: v.GetFloat64("matrix.cos_threshold"),
		TopRevenuePct:           v.GetFloat64("matrix.top_revenue_pct"),
		StarRequiresCostGuard:   v.GetBool("matrix.star_cost_guard"),
		ShareBasis:              models.ShareBasis(strings.ToLower(v.GetString("matrix.share_basis"))),
		SizeMetric:              models.SizeMetric(strings.ToLower(v.GetString("matrix.size_metric"))),
		UseLogarithmicShareAxis: v.GetBool("matrix.log_share_axis"),
	}
	if err := cfg.Validate(); err != nil {
		return models.ThresholdConfig{}, err
	}
	return cfg, nil
}

func outputConfig(v *viper.Viper) (outputSettings, error) {
	out := outputSettings{
		Format: strings.ToLower(v.GetString("output.format")),
		Path:   v.GetString("output.path"),
		Pretty: v.GetBool("output.pretty"),
		Sort:   v.GetString("output.sort"),
		Asc:    v.GetBool("output.ascending"),
		Search: v.GetString("output.search"),
	}
	switch out.Format {
	case "json", "csv", "table":
	default:
		return outputSettings{}, fmt.Errorf("invalid format: %s (must be json, csv, or table)", out.Format)
	}
	if _, err := matrix.ParseSortKey(out.Sort); err != nil {
		return outputSettings{}, err
	}
	return out, nil
}
