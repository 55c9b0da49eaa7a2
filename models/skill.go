package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	skillNameError        = `Skill object name must be an object with only the "en" and "fr" keys.`
	skillDescriptionError = `Skill object description must be an object with only the "en" and "fr" keys.`
)

// Skill is a bilingual skill entry dated to the month it was acquired,
// optionally linked to the Technology it was learned with. Deleting that
// Technology cascades to the Skill.
type Skill struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name         datatypes.JSON `json:"name" gorm:"type:jsonb;not null"`
	Description  datatypes.JSON `json:"description" gorm:"type:jsonb;not null"`
	Date         datatypes.JSON `json:"date" gorm:"type:jsonb;not null"`
	TechnologyID *uuid.UUID     `json:"technology,omitempty" gorm:"type:uuid;index;constraint:OnDelete:CASCADE"`

	Technology *Technology `json:"-" gorm:"foreignKey:TechnologyID;references:ID;constraint:OnDelete:CASCADE"`
}

// Validate runs the field validators in declaration order and reports the
// first failure. It must pass before any persist, insert and update alike.
func (s *Skill) Validate() error {
	if err := ValidateTranslatedText("name", s.Name, skillNameError); err != nil {
		return err
	}
	if err := ValidateTranslatedLines("description", s.Description, skillDescriptionError); err != nil {
		return err
	}
	return ValidateDate("date", s.Date)
}

// String returns the English name.
func (s *Skill) String() string {
	var name map[string]string
	if err := json.Unmarshal(s.Name, &name); err != nil {
		return ""
	}
	return name["en"]
}
