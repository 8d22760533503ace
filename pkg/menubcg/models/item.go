// Package models defines data structures for menu engineering analysis.
package models

// RawCell is a single spreadsheet value as read from the source sheet.
// It is either nil, a string, or a number.
type RawCell = any

// LineItem represents one canonical menu item after ingestion.
type LineItem struct {
	// ProductID is the product number used as aggregation key.
	ProductID string `json:"product_id"`
	// Name is the product display name.
	Name string `json:"name"`
	// POSID is the point-of-sale identifier (optional).
	POSID string `json:"pos_id,omitempty"`
	// Cost is the unit cost.
	Cost float64 `json:"cost"`
	// Price is the unit sale price.
	Price float64 `json:"price"`
	// CostOfSalesOverride is an explicit CoS% from the sheet, if present.
	CostOfSalesOverride *float64 `json:"cos_override,omitempty"`
	// Quantity is the number of units sold.
	Quantity float64 `json:"qty"`
	// SourceRow is the 1-based sheet row of the first occurrence (0 if unknown).
	SourceRow int `json:"source_row,omitempty"`
}

// Category is one of the four growth-share matrix quadrants.
type Category string

const (
	// CategoryStar marks items in the top revenue percentile.
	CategoryStar Category = "Star"
	// CategoryCow marks high share items with low cost of sales.
	CategoryCow Category = "Cow"
	// CategoryQuestionMark marks low share items with low cost of sales.
	CategoryQuestionMark Category = "QuestionMark"
	// CategoryDog marks items whose cost of sales exceeds the threshold.
	CategoryDog Category = "Dog"
)

// Categories lists all categories in display order.
var Categories = []Category{CategoryStar, CategoryCow, CategoryQuestionMark, CategoryDog}

// ClassifiedItem is the derived view of a LineItem placed on the matrix.
type ClassifiedItem struct {
	// Key is the product id of the underlying LineItem.
	Key string `json:"key"`
	// Name is the product name.
	Name string `json:"name"`
	// Share is the item's fraction of the dataset total, rounded to 4 decimals.
	Share float64 `json:"share"`
	// ShareRaw is the unrounded share.
	ShareRaw float64 `json:"share_raw"`
	// Markup is the cost of sales percentage clamped to 100 and rounded to 1 decimal.
	Markup float64 `json:"markup"`
	// MarkupRaw is the unclamped, unrounded cost of sales percentage.
	MarkupRaw float64 `json:"markup_raw"`
	// Size is the bubble size metric (revenue or margin).
	Size float64 `json:"size"`
	// Revenue is price times quantity.
	Revenue float64 `json:"revenue"`
	// Quantity is the number of units sold.
	Quantity float64 `json:"qty"`
	// Price is the unit sale price.
	Price float64 `json:"price"`
	// Cost is the unit cost.
	Cost float64 `json:"cost"`
	// Category is empty until the item is classified.
	Category Category `json:"category,omitempty"`
}
