package view

import (
	"fmt"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/charmbracelet/lipgloss"
)

const (
	EmptyCartMessage = "Your cart is empty"
	LoginRequired    = "Please log in to view your cart"
)

type CartRenderer struct {
	theme Theme
	width int
}

func NewCartRenderer(theme Theme, width int) CartRenderer {
	return CartRenderer{theme: theme, width: width}
}

// Render 購物車頁面, 沒有訂單或沒有商品時只顯示提示
func (r CartRenderer) Render(summary service.CartSummary, loading bool) string {
	if loading {
		return r.theme.faint().Render("Loading...")
	}
	if summary.Empty {
		return r.theme.box(r.width).Render(r.theme.faint().Render(EmptyCartMessage))
	}

	rows := make([]string, 0, len(summary.Lines)+6)
	rows = append(rows, r.theme.title().Render("Shopping Cart"))
	if summary.OrderID != "" {
		rows = append(rows, r.theme.faint().Render("order "+summary.OrderID))
	}
	for _, line := range summary.Lines {
		rows = append(rows, r.renderLine(line))
	}
	rows = append(rows,
		"",
		r.summaryRow("Items", fmt.Sprintf("%d", summary.ItemCount)),
		r.summaryRow("Subtotal", summary.Subtotal),
		r.summaryRow("Shipping", summary.Shipping),
		r.summaryRow("Total", r.theme.price().Bold(true).Render(summary.Total)),
	)
	return r.theme.box(r.width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (r CartRenderer) renderLine(line service.CartLine) string {
	head := fmt.Sprintf("#%d %s", line.ProductID, line.Name)
	body := []string{
		head + "  " + r.theme.price().Render(line.Price),
	}
	if line.Description != "" {
		body = append(body, "   "+r.theme.faint().Render(line.Description))
	}
	body = append(body, "   "+r.theme.faint().Render(line.Image))
	return strings.Join(body, "\n")
}

func (r CartRenderer) summaryRow(label, value string) string {
	return fmt.Sprintf("%-10s %s", label, value)
}
