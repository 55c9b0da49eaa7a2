package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mbriand/portfolio-backend/models"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// FindAll returns all technologies ordered by name
func (r *TechnologyRepo) FindAll() ([]*models.Technology, error) {
	var technologies []*models.Technology
	err := r.db.Order("name").Find(&technologies).Error
	return technologies, wrapDBError("find", "technologies", err)
}

// FindByID returns a technology by its ID
func (r *TechnologyRepo) FindByID(id uuid.UUID) (*models.Technology, error) {
	var technology models.Technology
	err := r.db.First(&technology, "id = ?", id).Error
	if err != nil {
		return nil, wrapDBError("find", "technology", err)
	}
	return &technology, nil
}

// Add inserts a new technology into the database
func (r *TechnologyRepo) Add(technology *models.Technology) error {
	return wrapDBError("create", "technology", r.db.Create(technology).Error)
}

// Update updates an existing technology in the database
func (r *TechnologyRepo) Update(technology *models.Technology) error {
	return wrapDBError("update", "technology", r.db.Save(technology).Error)
}

// Delete removes a technology by id. Dependent skills go with it through the
// cascading foreign key.
func (r *TechnologyRepo) Delete(id uuid.UUID) error {
	return wrapDBError("delete", "technology", r.db.Delete(&models.Technology{}, "id = ?", id).Error)
}
