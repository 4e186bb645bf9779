package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(newCORS().Handler)

	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}))

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/health", h.health)
		r.Post("/admin/login", h.adminLogin)

		r.Route("/api", func(r chi.Router) {
			r.Use(h.withRateLimit)
			r.Use(h.withProtocolCheck)

			r.Post("/pass/create", h.createPass)
			r.Get("/pass/{pass}/check", h.checkPass)

			r.Get("/data/{pass}", h.getData)
			r.Post("/data/{pass}", h.uploadData)
			r.Delete("/data/{pass}", h.deleteData)
			r.Get("/data/{pass}/versions", h.listVersions)
			r.Get("/data/{pass}/version/{id}", h.getVersion)

			r.Get("/stats/server", h.serverStats)
			r.Get("/stats/{pass}", h.passStats)

			r.Get("/quick/{pass}", h.quickAccess)

			// routes with admin authorization
			r.Group(func(r chi.Router) {
				r.Use(h.adminAuth)
				r.Get("/admin/passes", h.adminListPasses)
				r.Delete("/admin/passes/{pass}", h.adminDeletePass)
			})
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}

// newCORS admits every origin: the clients are browser extensions whose
// origins are not known in advance, and no endpoint relies on cookies.
func newCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", traceIDHeader, models.ProtocolHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         600,
	})
}
