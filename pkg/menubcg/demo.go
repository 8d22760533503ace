package menubcg

import (
	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

// DemoItems returns a small built-in menu covering every quadrant rule:
// a high cost item, an item priced below cost, and three cheap sellers.
func DemoItems() []models.LineItem {
	return []models.LineItem{
		{ProductID: "1001", Name: "Black Cod", Cost: 18, Price: 36, Quantity: 260},      // CoS 50%
		{ProductID: "1002", Name: "Sushi Deluxe", Cost: 22, Price: 20.5, Quantity: 200}, // CoS 107.3%
		{ProductID: "1003", Name: "Wagyu Gyoza", Cost: 3, Price: 14, Quantity: 320},     // CoS 21.4%
		{ProductID: "1004", Name: "Spicy Edamame", Cost: 1.1, Price: 7, Quantity: 500},  // CoS 15.7%
		{ProductID: "1005", Name: "Mochi", Cost: 1.8, Price: 6, Quantity: 180},          // CoS 30%
	}
}

// DemoAnalysis classifies DemoItems under cfg.
func DemoAnalysis(cfg models.ThresholdConfig) (*models.Analysis, error) {
	m, err := Reclassify(DemoItems(), cfg)
	if err != nil {
		return nil, err
	}
	items := DemoItems()
	return &models.Analysis{
		BookName: "demo",
		Config:   cfg,
		Ingest: models.IngestResult{
			Items:   items,
			Skipped: models.SkippedSummary{ByReason: map[string]int{}},
			Note:    "demo data loaded (5 products).",
		},
		Matrix: m,
	}, nil
}
