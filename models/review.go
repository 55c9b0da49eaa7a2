package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const reviewMessageError = `Review object message must be an object with only the "en" and "fr" keys.`

// Review is a client testimonial. The update code is assigned exactly once,
// when the review is first created, and is the credential for the
// self-service update path. Modified starts false and is set on every
// successful update; it never reverts.
type Review struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Author     string         `json:"author" gorm:"type:varchar(100)"`
	Message    datatypes.JSON `json:"message,omitempty" gorm:"type:jsonb"`
	UpdateCode string         `json:"-" gorm:"type:varchar(64);uniqueIndex"`
	Modified   bool           `json:"modified" gorm:"not null;default:false"`
	ProjectID  *uuid.UUID     `json:"project,omitempty" gorm:"type:uuid;uniqueIndex"`
}

// Validate accepts an empty message (the auto-created companion review starts
// that way); anything else must be a well-formed translated text object.
func (r *Review) Validate() error {
	if r.MessageEmpty() {
		return nil
	}
	return ValidateTranslatedText("message", r.Message, reviewMessageError)
}

// MessageEmpty reports whether the message is still the creation-time blank:
// absent, null, or an empty string.
func (r *Review) MessageEmpty() bool {
	if len(r.Message) == 0 || isNull(r.Message) {
		return true
	}
	var s string
	if err := json.Unmarshal(r.Message, &s); err == nil && s == "" {
		return true
	}
	return false
}
