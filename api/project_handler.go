package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mbriand/portfolio-backend/errs"
	"github.com/mbriand/portfolio-backend/services"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.Content
	checker   authChecker
}

func newProjectHandler(content *services.Content, checker authChecker) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
		checker:   checker,
	}
}

// getAllProjects returns the reduced list view of every project
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.content.ListProjects()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		views := make([]projectListView, 0, len(projects))
		for _, project := range projects {
			views = append(views, newProjectListView(project))
		}
		h.responder.WriteJSON(w, views)
	}
}

// getProject returns the full field set of one project
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.content.GetProject(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject stores a new project; its companion review is created in the
// same request.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload projectPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.content.CreateProject(&payload.Project, payload.TechnologyIDs); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.content.GetProject(payload.Project.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateProject applies a partial update over the stored record
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.content.GetProject(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		payload := projectPayload{Project: *project}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		payload.Project.ID = projectID

		if err := h.content.UpdateProject(&payload.Project, payload.TechnologyIDs); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.content.GetProject(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject removes a project and releases its remote image
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		if err := h.content.DeleteProject(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// uploadImage publishes a new image for the project and persists its
// reference
func (h projectHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		if err := r.ParseMultipartForm(10 << 20); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("an image file is required"))
			return
		}
		defer file.Close()

		project, err := h.content.UploadProjectImage(r.Context(), projectID, file, header.Header.Get("Content-Type"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"id":    project.ID,
			"image": project.Image,
		})
	}
}

// getProjectReview returns the companion review of a project
func (h projectHandler) getProjectReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		review, err := h.content.ProjectReview(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, newReviewView(review, h.checker.IsAdmin(r)))
	}
}
