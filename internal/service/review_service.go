package service

import (
	"strings"

	"github.com/sofreh-next/internal/constants"
	"github.com/sofreh-next/internal/logger"
	"github.com/sofreh-next/internal/models"
	"github.com/sofreh-next/internal/repository"
)

// ReviewService handles customer reviews of menu items.
type ReviewService struct {
	reviews repository.ReviewRepository
	menu    repository.MenuRepository
}

// NewReviewService creates a review service.
func NewReviewService(reviews repository.ReviewRepository, menu repository.MenuRepository) *ReviewService {
	return &ReviewService{reviews: reviews, menu: menu}
}

// CreateReviewInput is the input for submitting a review.
type CreateReviewInput struct {
	MenuItemID uint
	UserName   string
	Rating     int
	Comment    string
}

// ListForItem returns the reviews of one menu item, newest first.
func (s *ReviewService) ListForItem(menuItemID uint) ([]models.Review, error) {
	item, err := s.menu.GetByID(menuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return s.reviews.ListByItem(menuItemID)
}

// List returns reviews matching the filter plus the total count.
func (s *ReviewService) List(filter repository.ReviewListFilter) ([]models.Review, int64, error) {
	return s.reviews.List(filter)
}

// Create validates and stores a review, then refreshes the item's
// aggregate rating.
func (s *ReviewService) Create(input CreateReviewInput) (*models.Review, error) {
	input.UserName = strings.TrimSpace(input.UserName)
	input.Comment = strings.TrimSpace(input.Comment)
	if input.UserName == "" || input.Comment == "" {
		return nil, ErrInvalidInput
	}
	if input.Rating < constants.ReviewRatingMin || input.Rating > constants.ReviewRatingMax {
		return nil, ErrInvalidRating
	}

	item, err := s.menu.GetByID(input.MenuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	review := models.Review{
		MenuItemID: input.MenuItemID,
		UserName:   input.UserName,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := s.reviews.Create(&review); err != nil {
		return nil, err
	}

	if err := s.refreshItemRating(input.MenuItemID); err != nil {
		logger.Warnw("review_rating_refresh_failed", "item_id", input.MenuItemID, "error", err)
	}
	return &review, nil
}

// Delete removes a review and refreshes the item's aggregate rating.
func (s *ReviewService) Delete(id uint) error {
	review, err := s.reviews.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrNotFound
	}
	if err := s.reviews.Delete(id); err != nil {
		return err
	}
	if err := s.refreshItemRating(review.MenuItemID); err != nil {
		logger.Warnw("review_rating_refresh_failed", "item_id", review.MenuItemID, "error", err)
	}
	return nil
}

func (s *ReviewService) refreshItemRating(menuItemID uint) error {
	avg, count, err := s.reviews.AggregateForItem(menuItemID)
	if err != nil {
		return err
	}
	return s.menu.UpdateRating(menuItemID, avg, count)
}
