package api

import (
	"time"

	"github.com/alexmorgan-dev/portfolio-site-backend/portfolio"
	"github.com/alexmorgan-dev/portfolio-site-backend/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler    healthHandler
	portfolioHandler portfolioHandler
	projectHandler   projectHandler
	skillHandler     skillHandler
	messageHandler   messageHandler
	contactHandler   contactHandler
	authHandler      authHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(content *services.ContentService, provider *portfolio.Provider, adminPassword string, tokenSecret []byte, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		healthHandler:    newHealthHandler(startupTime),
		portfolioHandler: newPortfolioHandler(content, provider),
		projectHandler:   newProjectHandler(content, provider),
		skillHandler:     newSkillHandler(content, provider),
		messageHandler:   newMessageHandler(content),
		contactHandler:   newContactHandler(content),
		authHandler:      newAuthHandler(adminPassword, tokenSecret),
	}
}
