package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/mbriand/portfolio-backend/errs"
	"github.com/mbriand/portfolio-backend/models"
	"github.com/mbriand/portfolio-backend/services"
)

type reviewHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.Content
	checker   authChecker
}

func newReviewHandler(content *services.Content, checker authChecker) reviewHandler {
	logger := log.With().Str("handlerName", "reviewHandler").Logger()

	return reviewHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
		checker:   checker,
	}
}

// reviewUpdatePayload is the self-service body: the update code plus the
// fields a reviewer may change. Pointer fields distinguish absent from empty.
type reviewUpdatePayload struct {
	UpdateCode string          `json:"update_code"`
	Author     *string         `json:"author"`
	Message    json.RawMessage `json:"message"`
}

// getModifiedReviews lists only reviews their author has filled in; the
// update code is included for admin callers
func (h reviewHandler) getModifiedReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := h.content.ListReviews()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, newReviewViews(reviews, h.checker.IsAdmin(r)))
	}
}

// getAllReviews lists every review, modified or not
func (h reviewHandler) getAllReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := h.content.ListAllReviews()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, newReviewViews(reviews, h.checker.IsAdmin(r)))
	}
}

// createReview stores a new review. The body is optional: a bare POST
// creates a blank review whose code is mailed to the site owner.
func (h reviewHandler) createReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var review models.Review
		if err := json.NewDecoder(r.Body).Decode(&review); err != nil && !errors.Is(err, io.EOF) {
			h.logger.Error().Err(err).Msg("Failed to decode review request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.content.CreateReview(&review); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, newReviewView(&review, true))
	}
}

// deleteReview removes a review by id
func (h reviewHandler) deleteReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID, err := uuid.Parse(chi.URLParam(r, "reviewID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid reviewID"))
			return
		}

		if err := h.content.DeleteReview(reviewID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// getReviewWithCode fetches a review by its update code. An unknown or
// missing code is a 404; the code never matches the empty string.
func (h reviewHandler) getReviewWithCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("update_code")
		if code == "" {
			h.responder.WriteError(w, errs.NewNotFound("review"))
			return
		}

		review, err := h.content.ReviewByCode(code)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, newReviewView(review, h.checker.IsAdmin(r)))
	}
}

// updateReviewWithCode is the self-service edit path. No code in the body is
// a 403 (the credential step failed); a code that matches nothing is a 404;
// a message failing validation is a 400.
func (h reviewHandler) updateReviewWithCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload reviewUpdatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
			h.logger.Error().Err(err).Msg("Failed to decode review request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.UpdateCode == "" {
			h.responder.WriteError(w, errs.NewForbiddenError("update code required"))
			return
		}

		review, err := h.content.ReviewByCode(payload.UpdateCode)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if payload.Author != nil {
			review.Author = *payload.Author
		}
		if payload.Message != nil {
			review.Message = datatypes.JSON(payload.Message)
		}

		if err := h.content.UpdateReview(review); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, newReviewView(review, h.checker.IsAdmin(r)))
	}
}
