package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mbriand/portfolio-backend/models"
)

type ReviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) *ReviewRepo {
	return &ReviewRepo{db}
}

// FindAll returns every review ordered by author
func (r *ReviewRepo) FindAll() ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.db.Order("author").Find(&reviews).Error
	return reviews, wrapDBError("find", "reviews", err)
}

// FindModified returns only reviews whose owner has filled them in
func (r *ReviewRepo) FindModified() ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.db.Where("modified = ?", true).Order("author").Find(&reviews).Error
	return reviews, wrapDBError("find", "reviews", err)
}

// FindByID returns a review by its ID
func (r *ReviewRepo) FindByID(id uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		return nil, wrapDBError("find", "review", err)
	}
	return &review, nil
}

// FindByUpdateCode returns the review carrying the given self-service code
func (r *ReviewRepo) FindByUpdateCode(code string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "update_code = ?", code).Error
	if err != nil {
		return nil, wrapDBError("find", "review", err)
	}
	return &review, nil
}

// FindByProjectID returns the companion review of a project
func (r *ReviewRepo) FindByProjectID(projectID uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "project_id = ?", projectID).Error
	if err != nil {
		return nil, wrapDBError("find", "review", err)
	}
	return &review, nil
}

// Add inserts a new review into the database
func (r *ReviewRepo) Add(review *models.Review) error {
	return wrapDBError("create", "review", r.db.Create(review).Error)
}

// Update updates an existing review in the database
func (r *ReviewRepo) Update(review *models.Review) error {
	return wrapDBError("update", "review", r.db.Save(review).Error)
}

// Delete removes a review from the database by id
func (r *ReviewRepo) Delete(id uuid.UUID) error {
	return wrapDBError("delete", "review", r.db.Delete(&models.Review{}, "id = ?", id).Error)
}
