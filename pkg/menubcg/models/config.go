package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig indicates a threshold configuration outside its allowed range.
var ErrInvalidConfig = errors.New("invalid configuration")

// ShareBasis selects what an item's share is measured against.
type ShareBasis string

const (
	// ShareBasisUnits measures share by units sold.
	ShareBasisUnits ShareBasis = "units"
	// ShareBasisRevenue measures share by revenue.
	ShareBasisRevenue ShareBasis = "revenue"
)

// SizeMetric selects the bubble size metric.
type SizeMetric string

const (
	// SizeRevenue sizes items by revenue.
	SizeRevenue SizeMetric = "revenue"
	// SizeMargin sizes items by (price - cost) * quantity, floored at 0.
	SizeMargin SizeMetric = "margin"
)

// ThresholdConfig holds the classification thresholds and toggles.
// It is passed by value into every derivation call.
type ThresholdConfig struct {
	// CostOfSalesThresholdPct is the CoS% limit separating good from bad cost efficiency.
	CostOfSalesThresholdPct float64 `json:"cos_threshold_pct" validate:"gte=0,lte=100"`
	// TopRevenuePct is the cumulative revenue percentage that defines Stars.
	TopRevenuePct float64 `json:"top_revenue_pct" validate:"gte=0,lte=100"`
	// StarRequiresCostGuard restricts Stars to items within the CoS threshold.
	StarRequiresCostGuard bool `json:"star_cost_guard"`
	// ShareBasis selects units or revenue share.
	ShareBasis ShareBasis `json:"share_basis" validate:"oneof=units revenue"`
	// SizeMetric selects revenue or margin sizing.
	SizeMetric SizeMetric `json:"size_metric" validate:"oneof=revenue margin"`
	// UseLogarithmicShareAxis switches the X domain to log space.
	UseLogarithmicShareAxis bool `json:"log_share_axis"`
}

// DefaultThresholdConfig returns the default thresholds.
func DefaultThresholdConfig() ThresholdConfig {
	return ThresholdConfig{
		CostOfSalesThresholdPct: 25,
		TopRevenuePct:           25,
		StarRequiresCostGuard:   true,
		ShareBasis:              ShareBasisRevenue,
		SizeMetric:              SizeRevenue,
	}
}

var validate = validator.New()

// Validate checks the configuration ranges and enum values.
func (c ThresholdConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (got %v)", ErrInvalidConfig, fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
