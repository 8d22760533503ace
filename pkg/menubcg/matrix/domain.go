package matrix

import (
	"math"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

const (
	// minShareHalfWidth is the narrowest half window of a linear share axis.
	minShareHalfWidth = 0.02
	// minCostHalfWidth is the narrowest half window of the CoS% axis.
	minCostHalfWidth = 10
	// logShareFloor is the lowest share shown on a logarithmic axis.
	logShareFloor = 0.001
	// emptyCostHalfWidth is the CoS% half window used without data.
	emptyCostHalfWidth = 50
)

// ShareThreshold returns the lowest share among Stars, or 0 without Stars.
func ShareThreshold(items []models.ClassifiedItem, stars StarSet) float64 {
	found := false
	threshold := 0.0
	for _, it := range items {
		if !stars.Has(it.Key) {
			continue
		}
		if !found || it.Share < threshold {
			threshold = it.Share
			found = true
		}
	}
	return threshold
}

// ComputeAxisDomains returns the share (X) and CoS% (Y) axis intervals.
// Both are centred on their threshold so the quadrant lines sit mid-chart.
func ComputeAxisDomains(items []models.ClassifiedItem, shareThreshold, costThreshold float64, useLog bool) (x, y models.Domain) {
	minAllowed := 0.0
	if useLog {
		minAllowed = logShareFloor
	}

	if len(items) == 0 {
		return models.Domain{Lo: minAllowed, Hi: 1},
			models.Domain{Lo: costThreshold - emptyCostHalfWidth, Hi: costThreshold + emptyCostHalfWidth}
	}

	return shareDomain(items, shareThreshold, minAllowed, useLog), costDomain(items, costThreshold)
}

func shareDomain(items []models.ClassifiedItem, threshold, minAllowed float64, useLog bool) models.Domain {
	const maxAllowed = 1.0

	minData, maxData := minAllowed, 0.1
	found := false
	for _, it := range items {
		s := it.Share
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			continue
		}
		if !found {
			minData, maxData = s, s
			found = true
			continue
		}
		minData = math.Min(minData, s)
		maxData = math.Max(maxData, s)
	}

	c := threshold
	if c == 0 {
		c = (minData + maxData) / 2
	}
	c = math.Min(math.Max(c, minAllowed), maxAllowed)

	if useLog {
		minEff := math.Max(minAllowed, math.Min(minData, c))
		maxEff := math.Min(maxAllowed, math.Max(maxData, c))
		logC := math.Log(c)
		d := math.Max(logC-math.Log(minEff), math.Log(maxEff)-logC)
		return models.Domain{
			Lo: math.Max(minAllowed, math.Exp(logC-d)),
			Hi: math.Min(maxAllowed, math.Exp(logC+d)),
		}
	}

	half := math.Max(math.Max(c-minData, maxData-c), minShareHalfWidth)
	lower, upper := c-half, c+half
	if lower < minAllowed {
		overflow := minAllowed - lower
		lower = minAllowed
		upper = math.Min(maxAllowed, upper+overflow)
	}
	if upper > maxAllowed {
		overflow := upper - maxAllowed
		upper = maxAllowed
		lower = math.Max(minAllowed, lower-overflow)
	}
	return models.Domain{Lo: lower, Hi: upper}
}

func costDomain(items []models.ClassifiedItem, c float64) models.Domain {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, it := range items {
		if math.IsNaN(it.Markup) || math.IsInf(it.Markup, 0) {
			continue
		}
		minY = math.Min(minY, it.Markup)
		maxY = math.Max(maxY, it.Markup)
	}
	if math.IsInf(minY, 1) {
		minY, maxY = 0, 100
	}

	half := math.Max(math.Max(c-minY, maxY-c), minCostHalfWidth)
	return models.Domain{Lo: c - half, Hi: c + half}
}

// QuadrantCenters returns the label positions of the four quadrants.
// On a log share axis the X mid-points are geometric.
func QuadrantCenters(x, y models.Domain, shareThreshold, costThreshold float64, useLog bool) models.Centers {
	mid := func(a, b float64) float64 { return (a + b) / 2 }
	if useLog {
		mid = func(a, b float64) float64 {
			return math.Exp((math.Log(math.Max(a, 1e-6)) + math.Log(math.Max(b, 1e-6))) / 2)
		}
	}

	return models.Centers{
		XMin:      x.Lo,
		XMax:      x.Hi,
		XMid:      shareThreshold,
		XLeftMid:  mid(x.Lo, shareThreshold),
		XRightMid: mid(shareThreshold, x.Hi),
		YMid:      costThreshold,
		YLow:      (y.Lo + costThreshold) / 2,
		YHigh:     (costThreshold + y.Hi) / 2,
	}
}
