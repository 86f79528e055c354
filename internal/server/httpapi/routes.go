// Package httpapi serves the HTTP side of the server: a health check and
// the live product feed as Server-Sent Events.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophstore/internal/logging"
	"github.com/dmitrijs2005/gophstore/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	apiBasePath      = "/api"
	productsBasePath = "/products"
	feedSubPath      = "/feed"
	healthPath       = "/healthz"
)

// Products is the read side of the product service.
type Products interface {
	List(ctx context.Context, ownerID string) ([]*models.Product, error)
	Watch(ctx context.Context, ownerID string, send func([]*models.Product) error) error
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	products  Products
	db        Pinger
	logger    logging.Logger
	jwtSecret []byte
}

func NewHandler(products Products, db Pinger, l logging.Logger, secretKey string) *Handler {
	return &Handler{products: products, db: db, logger: l, jwtSecret: []byte(secretKey)}
}

// Routes builds the router. The feed route has no request timeout since
// it stays open for the life of the subscription.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.With(middleware.Timeout(5*time.Second)).Get(healthPath, h.handleHealthCheck)

	r.Route(apiBasePath+productsBasePath, func(r chi.Router) {
		r.Use(h.requireUser)
		r.With(middleware.Timeout(30*time.Second)).Get("/", h.handleListProducts)
		r.Get(feedSubPath, h.handleFeed)
	})

	return r
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (h *Handler) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			h.logger.Warn(r.Context(), "health check failed", "error", err)
			respondWithError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
