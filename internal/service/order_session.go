package service

import (
	"context"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	storeerr "github.com/RoyceAzure/lab/storefront/internal/errors"
	"github.com/RoyceAzure/lab/storefront/internal/infra/identity"
	"github.com/RoyceAzure/lab/storefront/internal/observability"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/seq"
)

const (
	OpFindPendingOrder    = "find_pending_order"
	OpConfirmPendingOrder = "confirm_pending_order"
	OpCancelPendingOrder  = "cancel_pending_order"
	OpAddToCart           = "add_to_cart"
	OpRemoveFromCart      = "remove_from_cart"
)

// OrderState 給 view 層的快照, Order 為深拷貝
type OrderState struct {
	Order   *model.Order
	Loading bool
	Request seq.RequestState
}

/*
OrderSession 管理 shopper 唯一一筆待處理訂單

	UNKNOWN -> (refresh, 未登入) -> EMPTY
	UNKNOWN -> (refresh, 已登入, 有訂單) -> LOADED
	LOADED  -> (confirm / cancel 成功) -> refresh 後 EMPTY 或新的 LOADED
	*       -> (fetch 失敗) -> EMPTY

多個 refresh 同時進行時只有最後發出的那一個可以寫入狀態
*/
type OrderSession struct {
	backend  IOrderBackend
	identity identity.IIdentityProvider
	observer observability.IObserver
	now      func() time.Time

	mu      sync.RWMutex
	seq     seq.Sequencer
	order   *model.Order
	loading bool
	version uint64

	notifier notifier[OrderState]
}

type OrderSessionOption func(*OrderSession)

func WithOrderObserver(observer observability.IObserver) OrderSessionOption {
	return func(s *OrderSession) {
		if observer != nil {
			s.observer = observer
		}
	}
}

func WithOrderClock(now func() time.Time) OrderSessionOption {
	return func(s *OrderSession) { s.now = now }
}

func NewOrderSession(backend IOrderBackend, idp identity.IIdentityProvider, opts ...OrderSessionOption) *OrderSession {
	s := &OrderSession{
		backend:  backend,
		identity: idp,
		observer: observability.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange 每次狀態被套用後呼叫
// listener 內不可同步呼叫 Refresh/Confirm/Cancel, 需要的話另開 goroutine
func (s *OrderSession) OnChange(fn func(OrderState)) {
	s.notifier.add(fn)
}

func (s *OrderSession) State() OrderState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *OrderSession) Order() *model.Order {
	return s.State().Order
}

func (s *OrderSession) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *OrderSession) snapshotLocked() OrderState {
	return OrderState{
		Order:   s.order.Clone(),
		Loading: s.loading,
		Request: s.seq.Current(),
	}
}

// commit 在持有 mu 的情況下呼叫, 會釋放 mu 後通知 listener
func (s *OrderSession) commit() {
	s.version++
	version, state := s.version, s.snapshotLocked()
	s.mu.Unlock()
	s.notifier.publish(version, state)
}

func (s *OrderSession) observe(op string, stage observability.Stage, id uint64, productID int64, started time.Time, err error) {
	evt := observability.Event{
		Component: observability.ComponentOrderSession,
		Op:        op,
		Stage:     stage,
		Seq:       id,
		ProductID: productID,
		Err:       err,
	}
	if !started.IsZero() {
		evt.Duration = s.now().Sub(started)
	}
	s.observer.Observe(evt)
}

/*
Refresh 重新讀取待處理訂單, 不會回傳錯誤
未登入時直接清空, 不發任何請求, 同時讓進行中的請求失效
失敗時清空訂單, 錯誤交給 observer
*/
func (s *OrderSession) Refresh(ctx context.Context) {
	if !s.identity.IsAuthenticated() {
		s.mu.Lock()
		id := s.seq.Begin()
		s.seq.Resolve(id)
		s.order = nil
		s.loading = false
		s.commit()
		s.observe(OpFindPendingOrder, observability.StageSkipped, id, 0, time.Time{}, storeerr.ErrAuthRequired)
		return
	}

	s.mu.Lock()
	id := s.seq.Begin()
	s.loading = true
	s.commit()

	started := s.now()
	s.observe(OpFindPendingOrder, observability.StageStarted, id, 0, time.Time{}, nil)
	order, err := s.backend.FindPendingOrder(ctx)

	s.mu.Lock()
	if s.seq.Resolve(id).Phase == seq.PhaseSuperseded {
		s.mu.Unlock()
		s.observe(OpFindPendingOrder, observability.StageDiscarded, id, 0, started, err)
		return
	}
	if err != nil {
		s.order = nil
	} else {
		s.order = pendingOnly(order)
	}
	s.loading = false
	s.commit()

	if err != nil {
		s.observe(OpFindPendingOrder, observability.StageFailed, id, 0, started, err)
		return
	}
	s.observe(OpFindPendingOrder, observability.StageSucceeded, id, 0, started, nil)
}

// 後端若回傳已結束的訂單, 視為沒有待處理訂單
func pendingOnly(order *model.Order) *model.Order {
	if order == nil || order.Status.IsTerminal() {
		return nil
	}
	return order.Clone()
}

// Confirm 確認待處理訂單, 成功後 refresh
// 失敗時保留原狀態且不重試, 錯誤回傳給呼叫端決定如何提示使用者
func (s *OrderSession) Confirm(ctx context.Context) error {
	return s.mutate(ctx, OpConfirmPendingOrder, 0, s.backend.ConfirmPendingOrder)
}

func (s *OrderSession) Cancel(ctx context.Context) error {
	return s.mutate(ctx, OpCancelPendingOrder, 0, s.backend.CancelPendingOrder)
}

// AddItem 後端在第一次加入商品時建立待處理訂單
func (s *OrderSession) AddItem(ctx context.Context, productID int64) error {
	return s.mutate(ctx, OpAddToCart, productID, func(ctx context.Context) error {
		return s.backend.AddToCart(ctx, productID)
	})
}

func (s *OrderSession) RemoveItem(ctx context.Context, productID int64) error {
	return s.mutate(ctx, OpRemoveFromCart, productID, func(ctx context.Context) error {
		return s.backend.RemoveFromCart(ctx, productID)
	})
}

// mutate refresh 一定在變更成功之後才發出, 拿到的序號比之前所有 refresh 都新
func (s *OrderSession) mutate(ctx context.Context, op string, productID int64, call func(context.Context) error) error {
	if !s.identity.IsAuthenticated() {
		s.observe(op, observability.StageSkipped, 0, productID, time.Time{}, storeerr.ErrAuthRequired)
		return storeerr.ErrAuthRequired
	}

	started := s.now()
	s.observe(op, observability.StageStarted, 0, productID, time.Time{}, nil)
	if err := call(ctx); err != nil {
		s.observe(op, observability.StageFailed, 0, productID, started, err)
		return err
	}
	s.observe(op, observability.StageSucceeded, 0, productID, started, nil)

	s.Refresh(ctx)
	return nil
}
