package service

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

//go:generate mockgen -source=backend.go -destination=mock/mock_backend.go -package=mock_service

type IOrderBackend interface {
	// FindPendingOrder 沒有待處理訂單時回傳 nil, nil
	FindPendingOrder(ctx context.Context) (*model.Order, error)
	ConfirmPendingOrder(ctx context.Context) error
	CancelPendingOrder(ctx context.Context) error
	AddToCart(ctx context.Context, productID int64) error
	RemoveFromCart(ctx context.Context, productID int64) error
}

type ICatalogBackend interface {
	// ListProducts categoryID 為 nil 表示全部商品
	ListProducts(ctx context.Context, categoryID *int64) ([]model.Product, error)
	GetCategory(ctx context.Context, categoryID int64) (*model.Category, error)
}
