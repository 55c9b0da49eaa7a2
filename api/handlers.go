package api

import (
	"github.com/mbriand/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(content *services.Content, checker authChecker) *routeHandlers {
	return &routeHandlers{
		technologyHandler: newTechnologyHandler(content),
		skillHandler:      newSkillHandler(content),
		projectHandler:    newProjectHandler(content, checker),
		reviewHandler:     newReviewHandler(content, checker),
		mailHandler:       newMailHandler(content),
	}
}
