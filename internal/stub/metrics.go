package stub

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsMiddleware 依 route pattern 統計請求數, 避免 path 上的 id 造成 label 爆量
func MetricsMiddleware(reg prometheus.Registerer) func(next http.Handler) http.Handler {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront_stub",
		Name:      "requests_total",
		Help:      "HTTP requests served by the stub backend.",
	}, []string{"method", "route", "status"})
	reg.MustRegister(requests)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recoder := &StatusRecoder{ResponseWriter: w}
			next.ServeHTTP(recoder, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			requests.WithLabelValues(r.Method, route, strconv.Itoa(recoder.Status())).Inc()
		})
	}
}
