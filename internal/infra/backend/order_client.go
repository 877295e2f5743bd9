package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	storeerr "github.com/RoyceAzure/lab/storefront/internal/errors"
)

const (
	OpFindPendingOrder    = "FindPendingOrder"
	OpConfirmPendingOrder = "ConfirmPendingOrder"
	OpCancelPendingOrder  = "CancelPendingOrder"
	OpAddToCart           = "AddToCart"
	OpRemoveFromCart      = "RemoveFromCart"
)

// FindPendingOrder 沒有待處理訂單時回傳 nil, nil
func (c *Client) FindPendingOrder(ctx context.Context) (*model.Order, error) {
	var order *model.Order
	status, err := c.do(ctx, OpFindPendingOrder, http.MethodGet, "/api/orders/pending", nil, &order)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return order, nil
}

func (c *Client) ConfirmPendingOrder(ctx context.Context) error {
	return c.mutatePending(ctx, OpConfirmPendingOrder, "/api/orders/pending/confirm")
}

func (c *Client) CancelPendingOrder(ctx context.Context) error {
	return c.mutatePending(ctx, OpCancelPendingOrder, "/api/orders/pending/cancel")
}

func (c *Client) AddToCart(ctx context.Context, productID int64) error {
	_, err := c.do(ctx, OpAddToCart, http.MethodPost, fmt.Sprintf("/api/products/%d/add-to-cart", productID), nil, nil)
	return err
}

func (c *Client) RemoveFromCart(ctx context.Context, productID int64) error {
	_, err := c.do(ctx, OpRemoveFromCart, http.MethodPost, fmt.Sprintf("/api/products/%d/remove-from-cart", productID), nil, nil)
	return err
}

// 404/409 代表後端沒有待處理訂單
func (c *Client) mutatePending(ctx context.Context, op, path string) error {
	status, err := c.do(ctx, op, http.MethodPost, path, nil, nil)
	if err != nil && (status == http.StatusNotFound || status == http.StatusConflict) {
		return storeerr.NewBackendError(op, status, storeerr.ErrNoPendingOrder)
	}
	return err
}
