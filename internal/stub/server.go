package stub

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/RoyceAzure/lab/storefront/internal/pkg/ratelimit"
)

type RouterOption func(*routerOptions)

type routerOptions struct {
	logger     zerolog.Logger
	limiter    ratelimit.ILimiter
	gatherer   prometheus.Gatherer
	registerer prometheus.Registerer
}

func WithLogger(logger zerolog.Logger) RouterOption {
	return func(o *routerOptions) { o.logger = logger }
}

func WithLimiter(limiter ratelimit.ILimiter) RouterOption {
	return func(o *routerOptions) { o.limiter = limiter }
}

// WithMetrics 掛上 /metrics
func WithMetrics(gatherer prometheus.Gatherer) RouterOption {
	return func(o *routerOptions) { o.gatherer = gatherer }
}

// WithRequestMetrics 每個請求計數, 註冊到 reg
func WithRequestMetrics(reg prometheus.Registerer) RouterOption {
	return func(o *routerOptions) { o.registerer = reg }
}

type handler struct {
	store *Store
}

func NewRouter(store *Store, opts ...RouterOption) http.Handler {
	o := &routerOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	h := &handler{store: store}

	r := chi.NewRouter()
	r.Use(RequestIdMiddleware)
	r.Use(LoggerMiddleware(o.logger))
	r.Use(RecoverMiddleware(o.logger))
	if o.registerer != nil {
		r.Use(MetricsMiddleware(o.registerer))
	}

	if o.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(o.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		if o.limiter != nil {
			r.Use(ratelimit.NewRateLimitMiddleware(o.limiter))
		}

		r.Get("/products", h.listProducts)
		r.Get("/categories/{id}", h.getCategory)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(store))
			r.Get("/orders/pending", h.findPendingOrder)
			r.Post("/orders/pending/confirm", h.confirmPendingOrder)
			r.Post("/orders/pending/cancel", h.cancelPendingOrder)
			r.Post("/products/{id}/add-to-cart", h.addToCart)
			r.Post("/products/{id}/remove-from-cart", h.removeFromCart)
		})
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid categoryId")
			return
		}
		categoryID = &id
	}
	writeJSON(w, http.StatusOK, h.store.ListProducts(categoryID))
}

func (h *handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	category, err := h.store.GetCategory(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *handler) findPendingOrder(w http.ResponseWriter, r *http.Request) {
	order := h.store.PendingOrder(getShopper(r))
	if order == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *handler) confirmPendingOrder(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.Confirm(getShopper(r)); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) cancelPendingOrder(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.Cancel(getShopper(r)); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) addToCart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	order, err := h.store.AddToCart(getShopper(r), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	order, err := h.store.RemoveFromCart(getShopper(r), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoPendingOrder):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrItemNotInCart):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
