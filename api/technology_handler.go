package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mbriand/portfolio-backend/errs"
	"github.com/mbriand/portfolio-backend/models"
	"github.com/mbriand/portfolio-backend/services"
)

type technologyHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.Content
}

func newTechnologyHandler(content *services.Content) technologyHandler {
	logger := log.With().Str("handlerName", "technologyHandler").Logger()

	return technologyHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

// getAllTechnologies returns every technology ordered by name
func (h technologyHandler) getAllTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologies, err := h.content.ListTechnologies()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, technologies)
	}
}

// createTechnology accepts either a JSON body or a multipart form carrying
// an optional image file next to the name value.
func (h technologyHandler) createTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var technology models.Technology

		image, imageType, err := decodeTechnologyRequest(r, &technology)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode technology request")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if closer, ok := image.(io.Closer); ok {
			defer closer.Close()
		}

		if err := h.content.CreateTechnology(r.Context(), &technology, image, imageType); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, technology)
	}
}

// updateTechnology applies a partial update over the stored record
func (h technologyHandler) updateTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := uuid.Parse(chi.URLParam(r, "technologyID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid technologyID"))
			return
		}

		technology, err := h.content.GetTechnology(technologyID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		image, imageType, err := decodeTechnologyRequest(r, technology)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode technology request")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if closer, ok := image.(io.Closer); ok {
			defer closer.Close()
		}
		technology.ID = technologyID

		if err := h.content.UpdateTechnology(r.Context(), technology, image, imageType); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, technology)
	}
}

// deleteTechnology removes a technology, its remote image, and (through the
// cascading foreign key) its dependent skills
func (h technologyHandler) deleteTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := uuid.Parse(chi.URLParam(r, "technologyID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid technologyID"))
			return
		}

		if err := h.content.DeleteTechnology(r.Context(), technologyID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// decodeTechnologyRequest fills the technology from either body shape and
// returns the image part when one was sent.
func decodeTechnologyRequest(r *http.Request, technology *models.Technology) (io.Reader, string, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			return nil, "", err
		}
		if name := r.FormValue("name"); name != "" {
			technology.Name = name
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				return nil, "", nil
			}
			return nil, "", err
		}
		return file, header.Header.Get("Content-Type"), nil
	}

	if err := json.NewDecoder(r.Body).Decode(technology); err != nil {
		return nil, "", err
	}
	return nil, "", nil
}
