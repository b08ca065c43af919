package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/Sakeerin/Preventive-Health-sub000/docs"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/api/handler"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler      *handler.UserHandler
	aggregateHandler *handler.AggregateHandler
	riskHandler      *handler.RiskHandler
	wellnessHandler  *handler.WellnessHandler
	driftHandler     *handler.DriftHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	aggregateHandler *handler.AggregateHandler,
	riskHandler *handler.RiskHandler,
	wellnessHandler *handler.WellnessHandler,
	driftHandler *handler.DriftHandler,
) *Router {
	return &Router{
		userHandler:      userHandler,
		aggregateHandler: aggregateHandler,
		riskHandler:      riskHandler,
		wellnessHandler:  wellnessHandler,
		driftHandler:     driftHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Model ops
	r.Route("/model/drift", func(r chi.Router) {
		r.Get("/", rt.driftHandler.Status)
		r.Post("/reset", rt.driftHandler.Reset)
	})

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Daily aggregates (nested under users)
			r.Route("/{userId}/aggregates/daily", func(r chi.Router) {
				r.Put("/", rt.aggregateHandler.Upsert)
				r.Get("/", rt.aggregateHandler.List)
				r.Get("/{date}", rt.aggregateHandler.GetByDate)
			})

			// Risk assessment
			r.Route("/{userId}/risk", func(r chi.Router) {
				r.Post("/assessment", rt.riskHandler.Assess)
				r.Get("/scores", rt.riskHandler.ListScores)
			})

			// Insights
			r.Route("/{userId}/insights", func(r chi.Router) {
				r.Get("/", rt.riskHandler.ListInsights)
				r.Post("/{insightId}/ack", rt.riskHandler.AcknowledgeInsight)
			})

			// Wellness summary
			r.Route("/{userId}/wellness/summary", func(r chi.Router) {
				r.Get("/", rt.wellnessHandler.GetSummary)
				r.Post("/feedback", rt.wellnessHandler.PostFeedback)
			})
		})
	})

	return r
}
