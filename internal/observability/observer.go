package observability

import (
	"time"
)

type Stage string

const (
	StageStarted   Stage = "started"
	StageSucceeded Stage = "succeeded"
	StageFailed    Stage = "failed"
	StageDiscarded Stage = "discarded" // 結果被較新的請求取代
	StageSkipped   Stage = "skipped"   // 例如未登入時不發請求
)

const (
	ComponentOrderSession = "order_session"
	ComponentCatalogView  = "catalog_view"
)

// Event 生命週期上的一個節點
type Event struct {
	Component  string
	Op         string
	Stage      Stage
	Seq        uint64
	CategoryID *int64
	ProductID  int64
	Duration   time.Duration
	Err        error
}

// IObserver 由外部注入, 核心邏輯只在固定的生命週期節點呼叫
// 實作不可阻塞太久, 也不可 panic
type IObserver interface {
	Observe(evt Event)
}

type ObserverFunc func(evt Event)

func (f ObserverFunc) Observe(evt Event) {
	f(evt)
}

type nopObserver struct{}

func (nopObserver) Observe(Event) {}

func Nop() IObserver {
	return nopObserver{}
}

type multiObserver []IObserver

func (m multiObserver) Observe(evt Event) {
	for _, o := range m {
		o.Observe(evt)
	}
}

// Multi 依序通知多個 observer, nil 會被略過
func Multi(observers ...IObserver) IObserver {
	list := make(multiObserver, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}
	if len(list) == 0 {
		return Nop()
	}
	if len(list) == 1 {
		return list[0]
	}
	return list
}
