package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint. Reads are public; mutations go through
// the admin gate, except the review self-service routes where the per-record
// update code is the credential instead.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)
		r.Use(authMiddleware.adminOrReadOnly)

		// Technology endpoints
		r.Get("/technology/", handlers.technologyHandler.getAllTechnologies())
		r.Post("/technology/", handlers.technologyHandler.createTechnology())
		r.Patch("/technology/{technologyID}", handlers.technologyHandler.updateTechnology())
		r.Delete("/technology/{technologyID}", handlers.technologyHandler.deleteTechnology())

		// Skill endpoints
		r.Get("/skill/", handlers.skillHandler.getAllSkills())
		r.Post("/skill/", handlers.skillHandler.createSkill())
		r.Patch("/skill/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/skill/{skillID}", handlers.skillHandler.deleteSkill())

		// Project endpoints
		r.Get("/project/", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/project/", handlers.projectHandler.createProject())
		r.Patch("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/project/{projectID}/upload_image", handlers.projectHandler.uploadImage())
		r.Get("/project/{projectID}/review", handlers.projectHandler.getProjectReview())

		// Review endpoints (admin side)
		r.Get("/review/", handlers.reviewHandler.getModifiedReviews())
		r.Get("/review/get-all", handlers.reviewHandler.getAllReviews())
		r.Post("/review/", handlers.reviewHandler.createReview())
		r.Delete("/review/{reviewID}", handlers.reviewHandler.deleteReview())
	})

	// Review self-service: the update code carried by the request is the
	// authorization factor, checked inside the handler.
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)

		r.Get("/review/with-code", handlers.reviewHandler.getReviewWithCode())
		r.Patch("/review/with-code", handlers.reviewHandler.updateReviewWithCode())
		r.Put("/review/with-code", handlers.reviewHandler.updateReviewWithCode())

		// Contact form, open to visitors
		r.Post("/mail/", handlers.mailHandler.sendMail())
	})
}
