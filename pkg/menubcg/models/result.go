package models

// ReasonRequiredFields counts rows missing product id, name, price or cost.
const ReasonRequiredFields = "requiredFields"

// SkippedSummary reports rows dropped during ingestion.
type SkippedSummary struct {
	// Total is the number of rejected rows.
	Total int `json:"total"`
	// ByReason maps a rejection reason to its count.
	ByReason map[string]int `json:"by_reason"`
	// Rows lists the 1-based sheet rows that were rejected.
	Rows []int `json:"rows,omitempty"`
}

// IngestResult is the outcome of turning raw rows into line items.
type IngestResult struct {
	// Items holds one aggregated LineItem per distinct product id, in first-seen order.
	Items []LineItem `json:"items"`
	// Skipped summarises rejected rows.
	Skipped SkippedSummary `json:"skipped"`
	// Note is a human readable load summary.
	Note string `json:"note"`
}

// Domain is a closed [Lo, Hi] axis interval.
type Domain struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Span returns Hi - Lo.
func (d Domain) Span() float64 {
	return d.Hi - d.Lo
}

// Centers holds quadrant label positions on both axes.
type Centers struct {
	XMin      float64 `json:"x_min"`
	XMax      float64 `json:"x_max"`
	XMid      float64 `json:"x_mid"`
	XLeftMid  float64 `json:"x_left_mid"`
	XRightMid float64 `json:"x_right_mid"`
	YMid      float64 `json:"y_mid"`
	YLow      float64 `json:"y_low"`
	YHigh     float64 `json:"y_high"`
}

// Matrix is the fully classified dataset with its chart geometry.
type Matrix struct {
	// Items are ordered by descending size.
	Items []ClassifiedItem `json:"items"`
	// StarKeys lists product ids admitted as Stars, in admission order.
	StarKeys []string `json:"star_keys"`
	// ShareThreshold is the minimum share among Stars (0 without Stars).
	ShareThreshold float64 `json:"share_threshold"`
	// CostThreshold is the CoS% threshold used.
	CostThreshold float64 `json:"cost_threshold"`
	// XDomain is the share axis interval.
	XDomain Domain `json:"x_domain"`
	// YDomain is the CoS% axis interval.
	YDomain Domain `json:"y_domain"`
	// Centers are the quadrant label positions.
	Centers Centers `json:"centers"`
	// Counts maps each category to its number of items.
	Counts map[Category]int `json:"counts"`
}

// Analysis bundles ingestion output with the classified matrix.
type Analysis struct {
	// BookName is the workbook file name (no path), empty for in-memory rows.
	BookName string `json:"book_name,omitempty"`
	// SheetName is the sheet the rows were read from.
	SheetName string `json:"sheet_name,omitempty"`
	// DataRange is the A1-style used range of the sheet.
	DataRange string `json:"data_range,omitempty"`
	// Config is the configuration the matrix was built with.
	Config ThresholdConfig `json:"config"`
	// Ingest is the ingestion outcome.
	Ingest IngestResult `json:"ingest"`
	// Matrix is the classification outcome.
	Matrix Matrix `json:"matrix"`
}
