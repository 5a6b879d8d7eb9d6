package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeOrders(t *testing.T) {
	in := []byte(`{
		"orders": [{
			"name": " Budi ",
			"phone": "+62 812-3456-7890",
			"notes": "should be dropped",
			"items": [
				{"name": "Pocky", "qty": 2.0, "unit_price": 30000.0, "sku": "x"},
				{"name": "  ", "qty": 1},
				{"name": "Chitato", "qty": "3", "total_price": 45000}
			]
		}]
	}`)

	out, dropped, err := SanitizeOrders(in)
	require.NoError(t, err)
	assert.NotEmpty(t, dropped)

	var resp ExtractResponse
	require.NoError(t, json.Unmarshal(out, &resp))
	require.Len(t, resp.Orders, 1)

	o := resp.Orders[0]
	assert.Equal(t, "Budi", o.Name)
	assert.Equal(t, "6281234567890", o.Phone)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Pocky", o.Items[0].Name)
	assert.Equal(t, 2, o.Items[0].Qty)
	assert.Equal(t, 30000, o.Items[0].UnitPrice)
	assert.Equal(t, "Chitato", o.Items[1].Name)
	assert.Equal(t, 3, o.Items[1].Qty)

	// result must pass the strict schema
	assert.NoError(t, ValidateJSONAgainstSchema(BuildOrdersJSONSchema(), out))
}

func TestSanitizeOrdersRejectsNonObject(t *testing.T) {
	_, _, err := SanitizeOrders([]byte(`[]`))
	assert.Error(t, err)

	_, _, err = SanitizeOrders([]byte(`{"no_orders": true}`))
	assert.Error(t, err)
}

func TestValidateOrdersSchema(t *testing.T) {
	good := []byte(`{"orders":[{"name":"Budi","items":[{"name":"Pocky","qty":2,"unit_price":30000}]}]}`)
	assert.NoError(t, ValidateJSONAgainstSchema(BuildOrdersJSONSchema(), good))

	bad := []byte(`{"orders":[{"items":[{"qty":2}]}]}`)
	assert.Error(t, ValidateJSONAgainstSchema(BuildOrdersJSONSchema(), bad))
}
