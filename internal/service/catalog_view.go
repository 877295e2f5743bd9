package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/observability"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/seq"
	"golang.org/x/sync/errgroup"
)

const (
	OpParseCategoryParam = "parse_category_param"
	OpListProducts       = "list_products"
	OpGetCategory        = "get_category"
)

type CatalogState struct {
	SelectedCategoryID *int64
	Category           *model.Category
	Products           []model.Product
	Loading            bool
	ProductsRequest    seq.RequestState
	CategoryRequest    seq.RequestState
}

func (s CatalogState) Leading() []model.Product {
	leading, _ := SplitProducts(s.Products)
	return leading
}

func (s CatalogState) Trailing() []model.Product {
	_, trailing := SplitProducts(s.Products)
	return trailing
}

// ProductCard 目錄格子上一張卡片需要的資料
type ProductCard struct {
	ID         int64
	Name       string
	Price      string
	Image      string
	HoverImage string
}

type CatalogPresentation struct {
	Title       string
	Description string
	Loading     bool
	Empty       bool
	Leading     []ProductCard
	Trailing    []ProductCard
	MediaAsset  string
	ShowMedia   bool
}

/*
CatalogView 依導覽參數決定目前分類, 取得分類資料與商品清單

分類資料與商品清單各自有序號, 切換分類後舊分類的回應一律丟棄
*/
type CatalogView struct {
	backend     ICatalogBackend
	observer    observability.IObserver
	media       MediaTable
	placeholder string
	now         func() time.Time

	mu          sync.RWMutex
	productSeq  seq.Sequencer
	categorySeq seq.Sequencer
	selected    *int64
	category    *model.Category
	products    []model.Product
	loading     bool
	version     uint64

	notifier notifier[CatalogState]
}

type CatalogViewOption func(*CatalogView)

func WithCatalogObserver(observer observability.IObserver) CatalogViewOption {
	return func(v *CatalogView) {
		if observer != nil {
			v.observer = observer
		}
	}
}

func WithMediaTable(table MediaTable) CatalogViewOption {
	return func(v *CatalogView) { v.media = table }
}

func WithPlaceholderImage(url string) CatalogViewOption {
	return func(v *CatalogView) {
		if url != "" {
			v.placeholder = url
		}
	}
}

func WithCatalogClock(now func() time.Time) CatalogViewOption {
	return func(v *CatalogView) { v.now = now }
}

func NewCatalogView(backend ICatalogBackend, opts ...CatalogViewOption) *CatalogView {
	v := &CatalogView{
		backend:     backend,
		observer:    observability.Nop(),
		media:       DefaultMediaTable(),
		placeholder: config.DefaultPlaceholderImageURL,
		now:         time.Now,
		products:    []model.Product{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *CatalogView) OnChange(fn func(CatalogState)) {
	v.notifier.add(fn)
}

func (v *CatalogView) State() CatalogState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snapshotLocked()
}

func (v *CatalogView) snapshotLocked() CatalogState {
	state := CatalogState{
		SelectedCategoryID: cloneID(v.selected),
		Products:           slices.Clone(v.products),
		Loading:            v.loading,
		ProductsRequest:    v.productSeq.Current(),
		CategoryRequest:    v.categorySeq.Current(),
	}
	if state.Products == nil {
		state.Products = []model.Product{}
	}
	if v.category != nil {
		c := *v.category
		state.Category = &c
	}
	return state
}

func (v *CatalogView) commit() {
	v.version++
	version, state := v.version, v.snapshotLocked()
	v.mu.Unlock()
	v.notifier.publish(version, state)
}

func (v *CatalogView) observe(op string, stage observability.Stage, id uint64, categoryID *int64, started time.Time, err error) {
	evt := observability.Event{
		Component:  observability.ComponentCatalogView,
		Op:         op,
		Stage:      stage,
		Seq:        id,
		CategoryID: cloneID(categoryID),
		Err:        err,
	}
	if !started.IsZero() {
		evt.Duration = v.now().Sub(started)
	}
	v.observer.Observe(evt)
}

/*
OnCategoryParamChanged 導覽參數改變時呼叫, 會阻塞到分類與商品都取得為止

selected 在發出請求前同步更新, 兩個請求的序號也在同一把鎖內取得,
所以之後才到的舊請求結果不會蓋掉新分類的狀態
參數無法解析時視為沒有分類, 並通知 observer
*/
func (v *CatalogView) OnCategoryParamChanged(ctx context.Context, param string) {
	categoryID, err := ParseCategoryParam(param)
	if err != nil {
		v.observe(OpParseCategoryParam, observability.StageFailed, 0, nil, time.Time{}, err)
	}

	v.mu.Lock()
	v.selected = cloneID(categoryID)
	var categorySeq uint64
	if categoryID == nil {
		// 全部商品沒有分類資料, 同時讓進行中的分類請求失效
		v.categorySeq.Resolve(v.categorySeq.Begin())
		v.category = nil
	} else {
		categorySeq = v.categorySeq.Begin()
	}
	productSeq := v.beginProductsLocked()
	v.commit()

	var g errgroup.Group
	if categoryID != nil {
		g.Go(func() error {
			v.fetchCategory(ctx, categorySeq, *categoryID)
			return nil
		})
	}
	g.Go(func() error {
		v.fetchProducts(ctx, productSeq, categoryID)
		return nil
	})
	_ = g.Wait()
}

// LoadProducts 重新讀取商品清單, categoryID 為 nil 時不限分類
func (v *CatalogView) LoadProducts(ctx context.Context, categoryID *int64) {
	v.mu.Lock()
	id := v.beginProductsLocked()
	v.commit()
	v.fetchProducts(ctx, id, categoryID)
}

func (v *CatalogView) beginProductsLocked() uint64 {
	v.loading = true
	return v.productSeq.Begin()
}

func (v *CatalogView) fetchProducts(ctx context.Context, id uint64, categoryID *int64) {
	started := v.now()
	v.observe(OpListProducts, observability.StageStarted, id, categoryID, time.Time{}, nil)
	products, err := v.backend.ListProducts(ctx, categoryID)

	v.mu.Lock()
	if v.productSeq.Resolve(id).Phase == seq.PhaseSuperseded {
		v.mu.Unlock()
		v.observe(OpListProducts, observability.StageDiscarded, id, categoryID, started, err)
		return
	}
	if err != nil || products == nil {
		v.products = []model.Product{}
	} else {
		v.products = slices.Clone(products)
	}
	v.loading = false
	v.commit()

	if err != nil {
		v.observe(OpListProducts, observability.StageFailed, id, categoryID, started, err)
		return
	}
	v.observe(OpListProducts, observability.StageSucceeded, id, categoryID, started, nil)
}

// fetchCategory 失敗時保留原本的分類資料
func (v *CatalogView) fetchCategory(ctx context.Context, id uint64, categoryID int64) {
	started := v.now()
	v.observe(OpGetCategory, observability.StageStarted, id, &categoryID, time.Time{}, nil)
	category, err := v.backend.GetCategory(ctx, categoryID)

	v.mu.Lock()
	if v.categorySeq.Resolve(id).Phase == seq.PhaseSuperseded {
		v.mu.Unlock()
		v.observe(OpGetCategory, observability.StageDiscarded, id, &categoryID, started, err)
		return
	}
	if err == nil && category != nil {
		c := *category
		v.category = &c
	}
	v.commit()

	if err != nil {
		v.observe(OpGetCategory, observability.StageFailed, id, &categoryID, started, err)
		return
	}
	v.observe(OpGetCategory, observability.StageSucceeded, id, &categoryID, started, nil)
}

// AmbientMedia 目前分類要插入的影片
func (v *CatalogView) AmbientMedia() (string, bool) {
	state := v.State()
	return ShouldShowAmbientMedia(state.Trailing(), v.media, state.Category)
}

func (v *CatalogView) Presentation() CatalogPresentation {
	state := v.State()
	leading, trailing := SplitProducts(state.Products)
	p := CatalogPresentation{
		Title:    CategoryTitle(state.Category),
		Loading:  state.Loading,
		Empty:    !state.Loading && len(state.Products) == 0,
		Leading:  v.cards(leading),
		Trailing: v.cards(trailing),
	}
	if state.Category != nil {
		p.Description = state.Category.Description
	}
	p.MediaAsset, p.ShowMedia = ShouldShowAmbientMedia(trailing, v.media, state.Category)
	return p
}

func (v *CatalogView) cards(products []model.Product) []ProductCard {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		img, hover := ResolveImages(p.ImageURL, v.placeholder)
		cards = append(cards, ProductCard{
			ID:         p.ID,
			Name:       p.Name,
			Price:      FormatCatalogPrice(p.Price),
			Image:      img,
			HoverImage: hover,
		})
	}
	return cards
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
