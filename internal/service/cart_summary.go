package service

import (
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

type CartLine struct {
	ProductID   int64
	Name        string
	Description string
	Price       string
	Image       string
}

// CartSummary 購物車頁面需要的資料, order 為 nil 時 Empty 為 true
type CartSummary struct {
	OrderID   string
	Empty     bool
	Lines     []CartLine
	ItemCount int
	Subtotal  string
	Shipping  string
	Total     string
}

func SummarizeOrder(order *model.Order, placeholder string) CartSummary {
	total := order.Total()
	summary := CartSummary{
		Empty:     order.IsEmpty(),
		ItemCount: order.ItemCount(),
		Subtotal:  FormatCartPrice(total),
		Shipping:  ShippingLabel,
		Total:     FormatCartPrice(total),
		Lines:     []CartLine{},
	}
	if order == nil {
		return summary
	}
	summary.OrderID = string(order.ID)
	for _, item := range order.Products {
		summary.Lines = append(summary.Lines, CartLine{
			ProductID:   item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       FormatCartPrice(item.Price),
			Image:       CartItemImage(item, placeholder),
		})
	}
	return summary
}
