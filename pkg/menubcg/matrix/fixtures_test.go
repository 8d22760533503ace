package matrix

import (
	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

// scenarioItems is the three-item dataset with one item priced below cost.
func scenarioItems() []models.LineItem {
	return []models.LineItem{
		{ProductID: "1", Name: "A", Cost: 18, Price: 36, Quantity: 260},
		{ProductID: "2", Name: "B", Cost: 22, Price: 20.5, Quantity: 200},
		{ProductID: "3", Name: "C", Cost: 3, Price: 14, Quantity: 320},
	}
}

// menuItems is the five-item demo menu.
func menuItems() []models.LineItem {
	return []models.LineItem{
		{ProductID: "1001", Name: "Black Cod", Cost: 18, Price: 36, Quantity: 260},
		{ProductID: "1002", Name: "Sushi Deluxe", Cost: 22, Price: 20.5, Quantity: 200},
		{ProductID: "1003", Name: "Wagyu Gyoza", Cost: 3, Price: 14, Quantity: 320},
		{ProductID: "1004", Name: "Spicy Edamame", Cost: 1.1, Price: 7, Quantity: 500},
		{ProductID: "1005", Name: "Mochi", Cost: 1.8, Price: 6, Quantity: 180},
	}
}

func keysOf(items []models.ClassifiedItem) []string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = it.Key
	}
	return keys
}
