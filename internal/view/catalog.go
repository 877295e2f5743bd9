package view

import (
	"fmt"

	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/charmbracelet/lipgloss"
)

type CatalogRenderer struct {
	theme Theme
	width int
}

func NewCatalogRenderer(theme Theme, width int) CatalogRenderer {
	return CatalogRenderer{theme: theme, width: width}
}

/*
Render 目錄頁
版面: 標題, 描述, 前 4 個商品, 影片(有的話), 其餘商品
*/
func (r CatalogRenderer) Render(p service.CatalogPresentation) string {
	rows := []string{r.theme.title().Render(p.Title)}
	if p.Description != "" {
		rows = append(rows, r.theme.faint().Render(p.Description))
	}
	rows = append(rows, "")

	switch {
	case p.Loading:
		rows = append(rows, r.theme.faint().Render("Loading..."))
	case p.Empty:
		rows = append(rows, r.theme.faint().Render(service.EmptyCategoryMessage))
	default:
		rows = append(rows, r.renderCards(p.Leading)...)
		if p.ShowMedia {
			rows = append(rows, r.theme.box(r.width).Render("▶ "+p.MediaAsset))
		}
		rows = append(rows, r.renderCards(p.Trailing)...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r CatalogRenderer) renderCards(cards []service.ProductCard) []string {
	rows := make([]string, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, r.renderCard(c))
	}
	return rows
}

func (r CatalogRenderer) renderCard(c service.ProductCard) string {
	line := fmt.Sprintf("#%d %s  %s", c.ID, c.Name, r.theme.price().Render(c.Price))
	images := r.theme.faint().Render(c.Image)
	if c.HoverImage != c.Image {
		images += r.theme.faint().Render(" | hover " + c.HoverImage)
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, "   "+images)
}
