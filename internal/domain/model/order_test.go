package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTotal(t *testing.T) {
	order := &Order{
		ID:     "42",
		Status: OrderStatusPending,
		Products: []LineItem{
			{ID: 1, Name: "Scarf", Price: decimal.RequireFromString("10.00")},
			{ID: 2, Name: "Gloves", Price: decimal.RequireFromString("25.50")},
		},
	}

	require.Equal(t, 2, order.ItemCount())
	require.True(t, order.Total().Equal(decimal.RequireFromString("35.50")))
	require.Equal(t, "35.50", order.Total().StringFixed(2))
	require.False(t, order.IsEmpty())
	require.True(t, order.IsPending())
}

func TestNilOrder(t *testing.T) {
	var order *Order
	require.Equal(t, 0, order.ItemCount())
	require.True(t, order.IsEmpty())
	require.False(t, order.IsPending())
	require.True(t, order.Total().IsZero())
	require.Nil(t, order.Clone())
}

func TestOrderUnmarshal(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		wantID OrderID
	}{
		{name: "numeric id", body: `{"id":17,"status":"PENDING","products":[]}`, wantID: "17"},
		{name: "string id", body: `{"id":"ord-9","status":"PENDING","products":[]}`, wantID: "ord-9"},
		{name: "null id", body: `{"id":null,"status":"PENDING","products":[]}`, wantID: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var order Order
			require.NoError(t, json.Unmarshal([]byte(tc.body), &order))
			assert.Equal(t, tc.wantID, order.ID)
			assert.Equal(t, OrderStatusPending, order.Status)
		})
	}
}

func TestOrderUnmarshalPrices(t *testing.T) {
	body := `{"id":1,"status":"PENDING","products":[
		{"id":3,"name":"Coat","price":199.9,"imageUrl":"a.jpg,b.jpg"},
		{"id":4,"name":"Hat","price":"20.10"}]}`
	var order Order
	require.NoError(t, json.Unmarshal([]byte(body), &order))
	require.Len(t, order.Products, 2)
	require.Equal(t, "220.00", order.Total().StringFixed(2))
}

func TestOrderClone(t *testing.T) {
	order := &Order{ID: "1", Status: OrderStatusPending, Products: []LineItem{{ID: 1, Name: "a"}}}
	c := order.Clone()
	c.Products[0].Name = "changed"
	require.Equal(t, "a", order.Products[0].Name)
}

func TestOrderStatusTerminal(t *testing.T) {
	require.False(t, OrderStatusPending.IsTerminal())
	require.True(t, OrderStatusConfirmed.IsTerminal())
	require.True(t, OrderStatusCancelled.IsTerminal())
}
