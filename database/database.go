package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mbriand/portfolio-backend/errs"
	"github.com/mbriand/portfolio-backend/models"
)

type Database struct {
	db             *gorm.DB
	technologyRepo *TechnologyRepo
	skillRepo      *SkillRepo
	projectRepo    *ProjectRepo
	reviewRepo     *ReviewRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:             db,
		technologyRepo: NewTechnologyRepo(db),
		skillRepo:      NewSkillRepo(db),
		projectRepo:    NewProjectRepo(db),
		reviewRepo:     NewReviewRepo(db),
	}
}

// Migrate creates or updates the schema for all entities.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.Technology{},
		&models.Skill{},
		&models.Project{},
		&models.Review{},
	)
}

// Accessor methods for each repository

func (d Database) TechnologyRepo() *TechnologyRepo {
	return d.technologyRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ReviewRepo() *ReviewRepo {
	return d.reviewRepo
}

// wrapDBError maps GORM errors onto the API error taxonomy so callers never
// see driver-level errors. Record-not-found becomes the 404-class error.
func wrapDBError(operation, entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFound(entity)
	}
	return errs.NewDatabaseError(operation, entity, err)
}
