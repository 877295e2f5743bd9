package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	storeerr "github.com/RoyceAzure/lab/storefront/internal/errors"
	"github.com/shopspring/decimal"
)

const (
	DefaultCategoryTitle = "Products"
	EmptyCategoryMessage = "No products found in this category"
	ShippingLabel        = "FREE"
)

// ParseCategoryParam 空字串代表全部商品, 回傳 nil
func ParseCategoryParam(param string) (*int64, error) {
	param = strings.TrimSpace(param)
	if param == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: category %q", storeerr.ErrInvalidateParameter, param)
	}
	return &id, nil
}

// SplitProducts 前 4 個為 leading, 其餘為 trailing, 不足 4 個時 trailing 為空
func SplitProducts(products []model.Product) (leading, trailing []model.Product) {
	n := min(len(products), config.LeadingProductCount)
	return products[:n:n], products[n:]
}

// MediaTable 分類名稱對應影片路徑
type MediaTable map[string]string

func DefaultMediaTable() MediaTable {
	return MediaTable{
		"Men":   "/ManVideo.mp4",
		"Women": "/WomenVideo.mp4",
		"Gifts": "/GiftsVideo.mp4",
	}
}

func (t MediaTable) Asset(categoryName string) (string, bool) {
	asset, ok := t[categoryName]
	return asset, ok && asset != ""
}

// ShouldShowAmbientMedia trailing 不為空且分類有對應影片才顯示
func ShouldShowAmbientMedia(trailing []model.Product, table MediaTable, category *model.Category) (string, bool) {
	if len(trailing) == 0 || category == nil {
		return "", false
	}
	return table.Asset(category.Name)
}

// ResolveImages imageUrl 以逗號分隔, 第一張為預設圖, 第二張為 hover 圖
// 位置是固定的, 空的第一段會落到 placeholder 而不是往前遞補
func ResolveImages(imageURL, placeholder string) (defaultImage, hoverImage string) {
	parts := strings.Split(imageURL, ",")
	defaultImage = strings.TrimSpace(parts[0])
	if defaultImage == "" {
		defaultImage = placeholder
	}
	hoverImage = defaultImage
	if len(parts) > 1 {
		if hover := strings.TrimSpace(parts[1]); hover != "" {
			hoverImage = hover
		}
	}
	return defaultImage, hoverImage
}

func FormatCatalogPrice(price decimal.Decimal) string {
	return "€" + price.Round(0).StringFixed(0)
}

func FormatCartPrice(price decimal.Decimal) string {
	return "$" + price.StringFixed(2)
}

func CategoryTitle(category *model.Category) string {
	if category == nil || category.Name == "" {
		return DefaultCategoryTitle
	}
	return category.Name
}

// CartItemImage 購物車只用第一張圖
func CartItemImage(item model.LineItem, placeholder string) string {
	img, _ := ResolveImages(item.ImageURL, placeholder)
	return img
}
