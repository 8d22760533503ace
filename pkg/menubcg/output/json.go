package output

import (
	"encoding/json"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

// ToJSON serialises an analysis.
func ToJSON(a *models.Analysis, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(a, "", "  ")
	}
	return json.Marshal(a)
}

// MatrixToJSON serialises only the classified matrix.
func MatrixToJSON(m *models.Matrix, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(m, "", "  ")
	}
	return json.Marshal(m)
}
