package api

import (
	"clothing_shop/internal/cache"
	"clothing_shop/internal/database"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server представляет HTTP-сервер.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	storage    database.Storage
	cache      cache.Cache
}

// NewServer создает и настраивает новый экземпляр сервера.
func NewServer(port string, storage database.Storage, cache cache.Cache) *Server {
	server := &Server{
		storage: storage,
		cache:   cache,
	}
	server.router = server.setupRouter()
	server.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           otelhttp.NewHandler(server.router, "clothing-shop-api"),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server
}

// Run запускает HTTP-сервер и блокируется до его остановки.
func (s *Server) Run() error {
	log.Printf("HTTP-сервер запущен на http://localhost%s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown дожидается завершения активных запросов.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// setupRouter настраивает маршрутизацию.
func (s *Server) setupRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	orders := NewOrderHandler(s.storage, s.cache)
	buyers := NewBuyerHandler(s.storage, s.storage)
	clothesTypes := NewClothesTypeHandler(s.storage)
	reports := NewAnalyticsHandler(s.storage, time.Now)

	router.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orders.Create)
			r.Get("/{number}", orders.GetByNumber)
			r.Delete("/{id}", orders.Delete)
			r.Post("/{id}/items", orders.AddItem)
			r.Post("/{id}/recalculate", orders.Recalculate)
		})
		r.Route("/buyers", func(r chi.Router) {
			r.Get("/", buyers.List)
			r.Post("/", buyers.Create)
			r.Get("/{id}", buyers.Get)
			r.Delete("/{id}", buyers.Delete)
			r.Get("/{id}/purchases", buyers.Purchases)
		})
		r.Route("/clothes-types", func(r chi.Router) {
			r.Get("/", clothesTypes.List)
			r.Post("/", clothesTypes.Create)
			r.Delete("/{id}", clothesTypes.Delete)
		})
		r.Get("/analytics/dashboard", reports.Dashboard)
	})

	router.Handle("/metrics", promhttp.Handler())

	return router
}
