package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mbriand/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects ordered by English name
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Technologies").Order("name->>'en'").Find(&projects).Error
	return projects, wrapDBError("find", "projects", err)
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Technologies").First(&project, "id = ?", id).Error
	if err != nil {
		return nil, wrapDBError("find", "project", err)
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return wrapDBError("create", "project", r.db.Omit("Technologies").Create(project).Error)
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return wrapDBError("update", "project", r.db.Omit("Technologies").Save(project).Error)
}

// ReplaceTechnologies swaps the project's technology links for the given set.
func (r *ProjectRepo) ReplaceTechnologies(project *models.Project, technologies []models.Technology) error {
	err := r.db.Model(project).Association("Technologies").Replace(technologies)
	return wrapDBError("link technologies to", "project", err)
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return wrapDBError("delete", "project", r.db.Select("Technologies").Delete(&models.Project{ID: id}).Error)
}
