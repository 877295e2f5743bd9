package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

const (
	OpListProducts = "ListProducts"
	OpGetCategory  = "GetCategory"
)

// ListProducts categoryID 為 nil 時不帶分類條件
func (c *Client) ListProducts(ctx context.Context, categoryID *int64) ([]model.Product, error) {
	var query url.Values
	if categoryID != nil {
		query = url.Values{"categoryId": []string{strconv.FormatInt(*categoryID, 10)}}
	}

	var products []model.Product
	if _, err := c.do(ctx, OpListProducts, http.MethodGet, "/api/products", query, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (c *Client) GetCategory(ctx context.Context, categoryID int64) (*model.Category, error) {
	var category model.Category
	if _, err := c.do(ctx, OpGetCategory, http.MethodGet, fmt.Sprintf("/api/categories/%d", categoryID), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
