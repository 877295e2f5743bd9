package service

import (
	"sync"
	"sync/atomic"

	"github.com/RoyceAzure/lab/storefront/internal/observability"
)

type fakeIdentity struct {
	authed atomic.Bool
	checks atomic.Int32
}

func newFakeIdentity(authed bool) *fakeIdentity {
	f := &fakeIdentity{}
	f.authed.Store(authed)
	return f
}

func (f *fakeIdentity) IsAuthenticated() bool {
	f.checks.Add(1)
	return f.authed.Load()
}

type recordingObserver struct {
	mu     sync.Mutex
	events []observability.Event
}

func (r *recordingObserver) Observe(evt observability.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *recordingObserver) byStage(op string, stage observability.Stage) []observability.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []observability.Event
	for _, e := range r.events {
		if e.Op == op && e.Stage == stage {
			res = append(res, e)
		}
	}
	return res
}
