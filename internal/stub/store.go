package stub

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

var (
	ErrUnknownToken    = errors.New("unknown token")
	ErrProductNotFound = errors.New("product not found")
	ErrCategoryMissing = errors.New("category not found")
	ErrNoPendingOrder  = errors.New("no pending order")
	ErrItemNotInCart   = errors.New("product is not in cart")
)

// Store 記憶體內的後端狀態, 每位 shopper 最多一筆 PENDING 訂單
type Store struct {
	mu         sync.Mutex
	tokens     map[string]string
	categories map[int64]model.Category
	products   []model.Product
	pending    map[string]*model.Order
	closed     map[string][]model.Order
}

func NewStore(seed *Seed) (*Store, error) {
	if seed == nil {
		seed = DefaultSeed()
	}
	categories, products, err := seed.toModel()
	if err != nil {
		return nil, err
	}

	s := &Store{
		tokens:     make(map[string]string, len(seed.Tokens)),
		categories: make(map[int64]model.Category, len(categories)),
		products:   products,
		pending:    make(map[string]*model.Order),
		closed:     make(map[string][]model.Order),
	}
	for token, shopper := range seed.Tokens {
		s.tokens[token] = shopper
	}
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	return s, nil
}

func (s *Store) ShopperForToken(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shopper, ok := s.tokens[token]
	if !ok {
		return "", ErrUnknownToken
	}
	return shopper, nil
}

func (s *Store) ListProducts(categoryID *int64) []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		if categoryID != nil && (p.CategoryID == nil || *p.CategoryID != *categoryID) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *Store) GetCategory(id int64) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return model.Category{}, ErrCategoryMissing
	}
	return c, nil
}

func (s *Store) PendingOrder(shopper string) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[shopper].Clone()
}

// AddToCart 第一次加入商品時才建立 PENDING 訂單, id 由後端發出
func (s *Store) AddToCart(shopper string, productID int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var product *model.Product
	for i := range s.products {
		if s.products[i].ID == productID {
			product = &s.products[i]
			break
		}
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	order, ok := s.pending[shopper]
	if !ok {
		order = &model.Order{
			ID:       model.OrderID(uuid.New().String()),
			Status:   model.OrderStatusPending,
			Products: []model.LineItem{},
		}
		s.pending[shopper] = order
	}
	order.Products = append(order.Products, product.ToLineItem())
	return order.Clone(), nil
}

// RemoveFromCart 移除第一筆符合的商品
func (s *Store) RemoveFromCart(shopper string, productID int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.pending[shopper]
	if !ok {
		return nil, ErrNoPendingOrder
	}
	for i, item := range order.Products {
		if item.ID == productID {
			order.Products = append(order.Products[:i], order.Products[i+1:]...)
			return order.Clone(), nil
		}
	}
	return nil, ErrItemNotInCart
}

func (s *Store) Confirm(shopper string) (*model.Order, error) {
	return s.close(shopper, model.OrderStatusConfirmed)
}

func (s *Store) Cancel(shopper string) (*model.Order, error) {
	return s.close(shopper, model.OrderStatusCancelled)
}

func (s *Store) close(shopper string, status model.OrderStatus) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.pending[shopper]
	if !ok {
		return nil, ErrNoPendingOrder
	}
	delete(s.pending, shopper)
	order.Status = status
	s.closed[shopper] = append(s.closed[shopper], *order.Clone())
	return order.Clone(), nil
}

func (s *Store) ClosedOrders(shopper string) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Order(nil), s.closed[shopper]...)
}
