package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mbriand/portfolio-backend/errs"
	"github.com/mbriand/portfolio-backend/services"
)

type mailHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.Content
}

func newMailHandler(content *services.Content) mailHandler {
	logger := log.With().Str("handlerName", "mailHandler").Logger()

	return mailHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

type mailPayload struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// sendMail relays a contact-form message to the site owner
func (h mailHandler) sendMail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload mailPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode mail request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.content.SendContactMail(payload.Name, payload.Email, payload.Subject, payload.Message); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "sent"})
	}
}
