package models

import (
	"github.com/google/uuid"

	"github.com/mbriand/portfolio-backend/errs"
)

// Technology represents a tool or framework that skills and projects link to.
// The image is a reference into the remote media store; the store does not
// garbage-collect it, so deletion must release it explicitly.
type Technology struct {
	ID    uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name  string    `json:"name" gorm:"type:varchar(50);not null"`
	Image *string   `json:"image,omitempty" gorm:"type:text"`
}

func (t *Technology) Validate() error {
	if t.Name == "" {
		return errs.NewValidationError("name", "Technology name must not be empty.")
	}
	if len(t.Name) > 50 {
		return errs.NewValidationError("name", "Technology name must be at most 50 characters.")
	}
	return nil
}

func (t *Technology) String() string {
	return t.Name
}
