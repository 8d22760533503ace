package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholdConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ThresholdConfig)
		wantErr bool
	}{
		{"defaults", func(*ThresholdConfig) {}, false},
		{"cos upper bound", func(c *ThresholdConfig) { c.CostOfSalesThresholdPct = 100 }, false},
		{"cos above range", func(c *ThresholdConfig) { c.CostOfSalesThresholdPct = 100.5 }, true},
		{"negative top revenue", func(c *ThresholdConfig) { c.TopRevenuePct = -1 }, true},
		{"units basis", func(c *ThresholdConfig) { c.ShareBasis = ShareBasisUnits }, false},
		{"unknown basis", func(c *ThresholdConfig) { c.ShareBasis = "leader" }, true},
		{"margin size", func(c *ThresholdConfig) { c.SizeMetric = SizeMargin }, false},
		{"empty size", func(c *ThresholdConfig) { c.SizeMetric = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultThresholdConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
