package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"   // 待處理, 即購物車
	OrderStatusConfirmed OrderStatus = "CONFIRMED" // 已確認
	OrderStatusCancelled OrderStatus = "CANCELLED" // 已取消
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusConfirmed || s == OrderStatusCancelled
}

// OrderID 由後端發出, client 端不產生也不修改
// 後端可能回傳數字或字串, 一律轉成字串保存
type OrderID string

func (id *OrderID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = OrderID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid order id %s: %w", string(data), err)
	}
	*id = OrderID(n.String())
	return nil
}

type Order struct {
	ID       OrderID     `json:"id,omitempty"`
	Status   OrderStatus `json:"status"`
	Products []LineItem  `json:"products"`
}

// LineItem 訂單內的一筆商品, 價格為加入時的快照
type LineItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

func (o *Order) IsPending() bool {
	return o != nil && o.Status == OrderStatusPending
}

func (o *Order) ItemCount() int {
	if o == nil {
		return 0
	}
	return len(o.Products)
}

func (o *Order) IsEmpty() bool {
	return o.ItemCount() == 0
}

/*
計算訂單總金額
每筆 line item 就是一件商品, 直接加總價格
*/
func (o *Order) Total() decimal.Decimal {
	amount := decimal.NewFromInt(0)
	if o == nil {
		return amount
	}
	for _, item := range o.Products {
		amount = amount.Add(item.Price)
	}
	return amount
}

// Clone 回傳深拷貝, 讓外部拿到的 snapshot 不會跟 session 內部共用 slice
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	if o.Products != nil {
		c.Products = make([]LineItem, len(o.Products))
		copy(c.Products, o.Products)
	}
	return &c
}
