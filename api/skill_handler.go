package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mbriand/portfolio-backend/errs"
	"github.com/mbriand/portfolio-backend/models"
	"github.com/mbriand/portfolio-backend/services"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.Content
}

func newSkillHandler(content *services.Content) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

// getAllSkills returns every skill ordered by English name
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.content.ListSkills()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, skills)
	}
}

// createSkill validates and stores a new skill; validator failures map to 400
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var skill models.Skill
		if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.content.CreateSkill(&skill); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, skill)
	}
}

// updateSkill applies a partial update: the request body is decoded over the
// stored record, then the whole record is re-validated and persisted.
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		skill, err := h.content.GetSkill(skillID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := json.NewDecoder(r.Body).Decode(skill); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		skill.ID = skillID

		if err := h.content.UpdateSkill(skill); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

// deleteSkill removes a skill by id
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		if err := h.content.DeleteSkill(skillID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
