package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-helper-market/internal/guard"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	router.Use(guard.Middleware(h.rules, h.cookieName))
	router.Use(h.withAuthProvider)

	// public pages and api
	router.Group(func(r chi.Router) {
		r.Get("/", h.homePage)
		r.Get("/aboutus", h.aboutPage)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/info", h.getAppInfo)
		r.Method("GET", "/metrics", h.metrics.handler())

		r.Get("/api/lowongan", h.listJobPostings)
		r.Get("/api/lowongan/{id}", h.getJobPosting)
		r.Get("/api/workers/{workerID}/reviews", h.listWorkerReviews)
		r.Get("/api/files/{fileID}", h.viewFile)
		r.Get("/reset-password", h.resetPasswordPage)
	})

	// pages for anonymous visitors
	router.Group(func(r chi.Router) {
		r.Use(h.redirectIfUser)
		r.Get("/login", h.loginPage)
		r.Get("/signup", h.signupPage)
		r.Get("/forgot-password", h.forgotPasswordPage)
	})

	// session flows
	router.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Post("/login", h.login)
		r.Post("/signup", h.signup)
		r.Post("/forgot-password", h.forgotPassword)
		r.Post("/reset-password", h.resetPassword)
	})
	router.Post("/logout", h.logout)
	router.Post("/logout-all", h.logoutAll)

	// routes requiring a verified session
	router.Group(func(r chi.Router) {
		r.Use(h.requireUser)
		r.Get("/dashboard", h.dashboardPage)
		r.Patch("/dashboard/profile", h.updateProfile)
		r.Put("/dashboard/password", h.updatePassword)
		r.Put("/dashboard/preferences", h.updatePreferences)
		r.Put("/dashboard/role", h.setRole)
		r.Post("/dashboard/profile/photo", h.uploadProfilePhoto)

		r.Get("/dashboard/lowongan", h.listOwnJobPostings)
		r.Post("/dashboard/lowongan", h.createJobPosting)
		r.Get("/dashboard/lowongan/{id}", h.getOwnJobPosting)
		r.Put("/dashboard/lowongan/{id}", h.updateJobPosting)
		r.Delete("/dashboard/lowongan/{id}", h.deleteJobPosting)

		r.Post("/dashboard/reviews", h.createReview)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
