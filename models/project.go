package models

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/mbriand/portfolio-backend/errs"
)

const (
	projectNameError        = `Project object name must be an object with only the "en" and "fr" keys.`
	projectDescriptionError = `Project object description must be an object with only the "en" and "fr" keys.`
)

// Project is a portfolio entry. Technologies is a plain many-to-many with no
// ownership; the image is an externally hosted asset released on delete.
type Project struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name         datatypes.JSON `json:"name" gorm:"type:jsonb;not null"`
	Description  datatypes.JSON `json:"description" gorm:"type:jsonb;not null"`
	Image        *string        `json:"image,omitempty" gorm:"type:text"`
	Github       *string        `json:"github,omitempty" gorm:"type:text"`
	Link         *string        `json:"link,omitempty" gorm:"type:text"`
	Client       *string        `json:"client,omitempty" gorm:"type:varchar(100)"`
	Duration     *int           `json:"duration,omitempty"`
	Technologies []Technology   `json:"technologies,omitempty" gorm:"many2many:project_technologies"`
}

func (p *Project) Validate() error {
	if err := ValidateTranslatedText("name", p.Name, projectNameError); err != nil {
		return err
	}
	if err := ValidateTranslatedLines("description", p.Description, projectDescriptionError); err != nil {
		return err
	}
	if err := validateOptionalURL("github", p.Github); err != nil {
		return err
	}
	return validateOptionalURL("link", p.Link)
}

func validateOptionalURL(field string, value *string) error {
	if value == nil || *value == "" {
		return nil
	}
	u, err := url.Parse(*value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errs.NewValidationError(field, fmt.Sprintf("Project %s must be a valid URL.", field))
	}
	return nil
}

// String returns the English name.
func (p *Project) String() string {
	var name map[string]string
	if err := json.Unmarshal(p.Name, &name); err != nil {
		return ""
	}
	return name["en"]
}
