package repository

import (
	"errors"

	"github.com/sofreh-next/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository is the data access interface for reviews.
type ReviewRepository interface {
	List(filter ReviewListFilter) ([]models.Review, int64, error)
	ListByItem(menuItemID uint) ([]models.Review, error)
	GetByID(id uint) (*models.Review, error)
	Create(review *models.Review) error
	Delete(id uint) error
	AggregateForItem(menuItemID uint) (float64, int, error)
}

// GormReviewRepository is the GORM implementation.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a review repository.
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// List returns reviews matching the filter plus the total count.
func (r *GormReviewRepository) List(filter ReviewListFilter) ([]models.Review, int64, error) {
	var reviews []models.Review

	query := r.db.Model(&models.Review{})
	if filter.MenuItemID != 0 {
		query = query.Where("menu_item_id = ?", filter.MenuItemID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("created_at DESC, id DESC").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// ListByItem returns every review for one menu item, newest first.
func (r *GormReviewRepository) ListByItem(menuItemID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("menu_item_id = ?", menuItemID).
		Order("created_at DESC, id DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetByID returns one review, or nil when it does not exist.
func (r *GormReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// Create inserts a review.
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Delete soft-deletes a review.
func (r *GormReviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}

// AggregateForItem recomputes the average rating and count for one item.
func (r *GormReviewRepository) AggregateForItem(menuItemID uint) (float64, int, error) {
	type aggregate struct {
		Avg   float64
		Count int64
	}
	var agg aggregate
	if err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("menu_item_id = ?", menuItemID).
		Scan(&agg).Error; err != nil {
		return 0, 0, err
	}
	return agg.Avg, int(agg.Count), nil
}
