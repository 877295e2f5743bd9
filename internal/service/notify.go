package service

import "sync"

/*
notifier 依狀態版本號通知 listener
publish 在釋放元件鎖之後才呼叫, 比已通知版本舊的快照直接丟掉,
listener 因此永遠不會看到狀態倒退, 也可以在 listener 內讀取元件狀態
*/
type notifier[T any] struct {
	mu        sync.Mutex
	notified  uint64
	listeners []func(T)
}

func (n *notifier[T]) add(fn func(T)) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

func (n *notifier[T]) publish(version uint64, state T) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if version <= n.notified {
		return
	}
	n.notified = version
	for _, fn := range n.listeners {
		fn(state)
	}
}
