package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/signup", h.signupPage)
		r.Post("/signup", h.signup)
		r.Get("/logout", h.logout)
		r.Get("/healthz", h.healthz)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/dashboard", h.dashboard)
		r.Get("/assessment", h.assessmentPage)
		r.Post("/assessment", h.submitAssessment)
		r.Get("/assessment/{id}", h.assessmentResult)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	if len(h.allowedOrigins) == 0 {
		return router
	}

	return cors.New(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
	}).Handler(router)
}
