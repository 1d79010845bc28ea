package service

import (
	"context"
	"strings"
	"time"

	"github.com/sofreh-next/internal/cache"
	"github.com/sofreh-next/internal/constants"
	"github.com/sofreh-next/internal/models"
	"github.com/sofreh-next/internal/repository"
)

// MenuService serves the public menu.
type MenuService struct {
	repo       repository.MenuRepository
	categories repository.CategoryRepository
	cacheTTL   time.Duration
}

// NewMenuService creates a menu service.
func NewMenuService(repo repository.MenuRepository, categories repository.CategoryRepository, cacheTTL time.Duration) *MenuService {
	return &MenuService{repo: repo, categories: categories, cacheTTL: cacheTTL}
}

// MenuResponse is the full menu grouped with its categories.
type MenuResponse struct {
	Categories []models.Category `json:"categories"`
	Items      []models.MenuItem `json:"items"`
}

// Menu returns the full menu, cached for a short window.
func (s *MenuService) Menu(ctx context.Context) (*MenuResponse, error) {
	if s.cacheTTL > 0 {
		var cached MenuResponse
		hit, cacheErr := cache.GetJSON(ctx, constants.CacheKeyMenu, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	categories, err := s.categories.List()
	if err != nil {
		return nil, err
	}
	items, _, err := s.repo.List(repository.MenuListFilter{})
	if err != nil {
		return nil, err
	}

	response := MenuResponse{Categories: categories, Items: items}
	if s.cacheTTL > 0 {
		_ = cache.SetJSON(ctx, constants.CacheKeyMenu, response, s.cacheTTL)
	}
	return &response, nil
}

// ItemByID returns one menu item.
func (s *MenuService) ItemByID(id uint) (*models.MenuItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// CategoryNames returns the distinct category names present on the menu,
// cached for a short window.
func (s *MenuService) CategoryNames(ctx context.Context) ([]string, error) {
	if s.cacheTTL > 0 {
		var cached []string
		hit, cacheErr := cache.GetJSON(ctx, constants.CacheKeyCategories, &cached)
		if cacheErr == nil && hit {
			return cached, nil
		}
	}

	names, err := s.repo.Categories()
	if err != nil {
		return nil, err
	}
	if s.cacheTTL > 0 {
		_ = cache.SetJSON(ctx, constants.CacheKeyCategories, names, s.cacheTTL)
	}
	return names, nil
}

// ItemsByCategory returns the items of one category slug. An unknown
// category is an error; a known category with no items is an empty list.
func (s *MenuService) ItemsByCategory(category string, onlyPopular bool) ([]models.MenuItem, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrInvalidInput
	}
	existing, err := s.categories.GetBySlug(category)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	items, _, err := s.repo.List(repository.MenuListFilter{Category: category, OnlyPopular: onlyPopular})
	return items, err
}

// Popular returns the items flagged as popular.
func (s *MenuService) Popular() ([]models.MenuItem, error) {
	return s.repo.ListPopular()
}

// Search matches the keyword against names and descriptions in both
// languages. A blank keyword returns an empty result, not an error.
func (s *MenuService) Search(keyword string) ([]models.MenuItem, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []models.MenuItem{}, nil
	}
	return s.repo.Search(keyword)
}
