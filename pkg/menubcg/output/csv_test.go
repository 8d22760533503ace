package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
)

func TestToCSV(t *testing.T) {
	items := []models.ClassifiedItem{
		{
			Key: "1003", Name: "Wagyu Gyoza", Share: 0.1989, Markup: 21.4, Size: 4480,
			Revenue: 4480, Quantity: 320, Price: 14, Cost: 3, Category: models.CategoryStar,
		},
		{
			Key: "9", Name: `Chef's "special", large`, Share: 0.01, Markup: 100, Size: 41.5,
			Revenue: 41.5, Quantity: 2, Price: 20.75, Cost: 30, Category: models.CategoryDog,
		},
	}

	got := string(ToCSV(items))
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Name,RelativeShare,Markup%,Size,Revenue,Units,Price,Cost,Category", lines[0])
	assert.Equal(t, "Wagyu Gyoza,0.1989,21.4,4480,4480,320,14,3,Star", lines[1])
	assert.Equal(t, `Chef's ""special"", large,0.01,100,41.5,41.5,2,20.75,30,Dog`, lines[2])
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestToCSVEmpty(t *testing.T) {
	assert.Equal(t, "Name,RelativeShare,Markup%,Size,Revenue,Units,Price,Cost,Category", string(ToCSV(nil)))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []models.ClassifiedItem{{Name: "Mochi", Category: models.CategoryDog}}))
	assert.Equal(t, "Name,RelativeShare,Markup%,Size,Revenue,Units,Price,Cost,Category\nMochi,0,0,0,0,0,0,0,Dog", buf.String())
}
