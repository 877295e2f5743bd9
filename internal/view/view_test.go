package view

import (
	"errors"
	"strings"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/stretchr/testify/require"
)

func TestRenderCart(t *testing.T) {
	summary := service.CartSummary{
		OrderID:   "o-1",
		ItemCount: 2,
		Subtotal:  "$35.50",
		Shipping:  service.ShippingLabel,
		Total:     "$35.50",
		Lines: []service.CartLine{
			{ProductID: 1, Name: "Candle", Price: "$10.00", Image: "candle.jpg"},
			{ProductID: 2, Name: "Gift Card", Description: "any amount", Price: "$25.50", Image: "card.jpg"},
		},
	}

	out := NewCartRenderer(DefaultTheme, 60).Render(summary, false)
	for _, want := range []string{"Shopping Cart", "Candle", "$10.00", "Gift Card", "any amount", "$35.50", "FREE", "candle.jpg"} {
		require.Contains(t, out, want)
	}
}

func TestRenderEmptyCart(t *testing.T) {
	r := NewCartRenderer(DefaultTheme, 0)
	require.Contains(t, r.Render(service.CartSummary{Empty: true}, false), EmptyCartMessage)
	require.Contains(t, r.Render(service.CartSummary{}, true), "Loading")
}

func TestRenderCatalog(t *testing.T) {
	card := func(id int64, name string) service.ProductCard {
		return service.ProductCard{ID: id, Name: name, Price: "€10", Image: name + ".jpg", HoverImage: name + "-hover.jpg"}
	}
	p := service.CatalogPresentation{
		Title:       "Men",
		Description: "for him",
		Leading:     []service.ProductCard{card(1, "a"), card(2, "b"), card(3, "c"), card(4, "d")},
		Trailing:    []service.ProductCard{card(5, "e")},
		MediaAsset:  "/ManVideo.mp4",
		ShowMedia:   true,
	}

	out := NewCatalogRenderer(DefaultTheme, 40).Render(p)
	require.Contains(t, out, "Men")
	require.Contains(t, out, "for him")
	require.Contains(t, out, "/ManVideo.mp4")
	require.Contains(t, out, "hover e-hover.jpg")

	// 影片插在第 4 與第 5 個商品之間
	require.Less(t, strings.Index(out, "#4 d"), strings.Index(out, "/ManVideo.mp4"))
	require.Less(t, strings.Index(out, "/ManVideo.mp4"), strings.Index(out, "#5 e"))
}

func TestRenderCatalogEmpty(t *testing.T) {
	out := NewCatalogRenderer(DefaultTheme, 40).Render(service.CatalogPresentation{Title: service.DefaultCategoryTitle, Empty: true})
	require.Contains(t, out, service.DefaultCategoryTitle)
	require.Contains(t, out, service.EmptyCategoryMessage)
}

func TestNotice(t *testing.T) {
	require.Contains(t, Notice(DefaultTheme, "Order confirmed", nil), "Order confirmed")
	require.Contains(t, Notice(DefaultTheme, "Failed to confirm order", errors.New("boom")), "boom")
}
