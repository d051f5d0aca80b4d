package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site routes and the password-gated admin
// routes. Public reads go through the shared portfolio provider; admin
// mutations write through the content service and refresh the provider.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(RequestLogger)

		r.Get("/health", handlers.healthHandler.getHealth())
		r.Get("/portfolio", handlers.portfolioHandler.getPortfolio())
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Post("/contact", handlers.contactHandler.submitContactForm())

		r.Post("/admin/login", handlers.authHandler.login())
		r.Post("/admin/logout", handlers.authHandler.logout())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(RequestLogger)
		r.Use(authMiddleware.authenticate)

		r.Get("/admin/messages", handlers.messageHandler.getAllMessages())
		r.Delete("/admin/message/{messageID}", handlers.messageHandler.deleteMessage())

		r.Put("/admin/portfolio/{section}", handlers.portfolioHandler.updateSection())

		r.Post("/admin/project", handlers.projectHandler.createProject())
		r.Put("/admin/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/admin/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/admin/skill", handlers.skillHandler.createSkill())
		r.Put("/admin/skill/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/admin/skill/{skillID}", handlers.skillHandler.deleteSkill())
	})
}
