package api

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/mbriand/portfolio-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	technologyHandler technologyHandler
	skillHandler      skillHandler
	projectHandler    projectHandler
	reviewHandler     reviewHandler
	mailHandler       mailHandler
}

// reviewView is the outbound review shape. The update code is only exposed
// to admin callers.
type reviewView struct {
	ID         uuid.UUID       `json:"id"`
	Author     string          `json:"author"`
	Message    json.RawMessage `json:"message,omitempty"`
	Project    *uuid.UUID      `json:"project,omitempty"`
	Modified   bool            `json:"modified"`
	UpdateCode string          `json:"update_code,omitempty"`
}

func newReviewView(review *models.Review, admin bool) reviewView {
	view := reviewView{
		ID:       review.ID,
		Author:   review.Author,
		Message:  json.RawMessage(review.Message),
		Project:  review.ProjectID,
		Modified: review.Modified,
	}
	if admin {
		view.UpdateCode = review.UpdateCode
	}
	return view
}

func newReviewViews(reviews []*models.Review, admin bool) []reviewView {
	views := make([]reviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, newReviewView(review, admin))
	}
	return views
}

// projectListView is the reduced field set of the project list endpoint.
// The detail endpoint returns the full model.
type projectListView struct {
	ID           uuid.UUID           `json:"id"`
	Name         json.RawMessage     `json:"name"`
	Description  json.RawMessage     `json:"description"`
	Image        *string             `json:"image,omitempty"`
	Technologies []models.Technology `json:"technologies"`
}

func newProjectListView(project *models.Project) projectListView {
	technologies := project.Technologies
	if technologies == nil {
		technologies = []models.Technology{}
	}
	return projectListView{
		ID:           project.ID,
		Name:         json.RawMessage(project.Name),
		Description:  json.RawMessage(project.Description),
		Image:        project.Image,
		Technologies: technologies,
	}
}

// projectPayload lets write requests reference technologies by id; the
// outer field shadows the embedded association for (un)marshaling.
type projectPayload struct {
	models.Project
	TechnologyIDs []uuid.UUID `json:"technologies"`
}
