package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/oac-maputo/supertaca/docs"
	"github.com/oac-maputo/supertaca/handlers"
	"github.com/oac-maputo/supertaca/metrics"
	"github.com/oac-maputo/supertaca/middleware"
)

// Options configure the router.
type Options struct {
	AllowedOrigins []string
	// Auth guards the write routes. When nil, they are open.
	Auth *middleware.Authenticator
	// Metrics, when set, instruments every request and is served at /metrics.
	Metrics *metrics.Recorder
	// Ready backs /readyz. When nil, /readyz answers like /healthz.
	Ready func(context.Context) error
}

func SetupRoutes(
	router chi.Router,
	opts Options,
	dashboardHandler *handlers.DashboardHandler,
	statsHandler *handlers.StatsHandler,
	fixtureHandler *handlers.FixtureHandler,
	registrationHandler *handlers.RegistrationHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(opts.Metrics.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if opts.Ready != nil {
			if err := opts.Ready(r.Context()); err != nil {
				http.Error(w, "not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	if opts.Metrics != nil {
		router.Handle("/metrics", opts.Metrics.Handler())
	}

	router.Get("/ws/results", webSocketHandler.ServeResults)

	router.Route("/api", func(r chi.Router) {
		r.Get("/overview", dashboardHandler.Overview)
		r.Get("/reference", dashboardHandler.Reference)
		r.Get("/standings", statsHandler.Standings)
		r.Get("/stats/scorers", statsHandler.TopScorers)
		r.Get("/stats/assists", statsHandler.TopAssists)
		r.Get("/matches", statsHandler.ListMatches)
		r.Get("/fixtures", fixtureHandler.GroupFixtures)
		r.Get("/knockout", fixtureHandler.KnockoutProjection)

		r.Group(func(r chi.Router) {
			if opts.Auth != nil {
				r.Use(opts.Auth.Authenticate)
				r.Use(middleware.Authorize(middleware.RoleAdmin, middleware.RoleOperator))
			}

			r.Post("/matches", registrationHandler.RegisterMatch)
			r.Post("/publications", statsHandler.Publish)

			r.Route("/drafts", func(r chi.Router) {
				r.Post("/", registrationHandler.CreateDraft)
				r.Route("/{draftID}", func(r chi.Router) {
					r.Get("/", registrationHandler.GetDraft)
					r.Delete("/", registrationHandler.DeleteDraft)
					r.Patch("/match", registrationHandler.UpdateMatchField)
					r.Post("/goals", registrationHandler.AddGoalRow)
					r.Patch("/goals/{index}", registrationHandler.UpdateGoalRow)
					r.Get("/players", registrationHandler.ListEligiblePlayers)
					r.Post("/submit", registrationHandler.SubmitDraft)
				})
			})
		})
	})
}
