package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mbriand/portfolio-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns all skills ordered by English name
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Order("name->>'en'").Find(&skills).Error
	return skills, wrapDBError("find", "skills", err)
}

// FindByID returns a skill by its ID
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if err != nil {
		return nil, wrapDBError("find", "skill", err)
	}
	return &skill, nil
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	return wrapDBError("create", "skill", r.db.Create(skill).Error)
}

// Update updates an existing skill in the database
func (r *SkillRepo) Update(skill *models.Skill) error {
	return wrapDBError("update", "skill", r.db.Save(skill).Error)
}

// Delete removes a skill from the database by id
func (r *SkillRepo) Delete(id uuid.UUID) error {
	return wrapDBError("delete", "skill", r.db.Delete(&models.Skill{}, "id = ?", id).Error)
}
