package repository

import (
	"errors"

	"github.com/sofreh-next/internal/models"

	"gorm.io/gorm"
)

// MenuRepository is the data access interface for menu items.
type MenuRepository interface {
	List(filter MenuListFilter) ([]models.MenuItem, int64, error)
	ListPopular() ([]models.MenuItem, error)
	GetByID(id uint) (*models.MenuItem, error)
	Search(keyword string) ([]models.MenuItem, error)
	Categories() ([]string, error)
	Create(item *models.MenuItem) error
	Update(item *models.MenuItem) error
	UpdateRating(id uint, rating float64, reviewsCount int) error
}

// GormMenuRepository is the GORM implementation.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a menu repository.
func NewMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// List returns menu items matching the filter plus the total count.
func (r *GormMenuRepository) List(filter MenuListFilter) ([]models.MenuItem, int64, error) {
	var items []models.MenuItem

	query := r.db.Model(&models.MenuItem{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.OnlyPopular {
		query = query.Where("is_popular = ?", true)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		condition, argCount := buildLikeCondition(r.db, searchColumns)
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// searchColumns are matched by the free-text menu search in both languages.
var searchColumns = []string{"name_en", "name_fa", "description_en", "description_fa", "category"}

// ListPopular returns items flagged as popular.
func (r *GormMenuRepository) ListPopular() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.Where("is_popular = ?", true).Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns one menu item, or nil when it does not exist.
func (r *GormMenuRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Search matches the keyword against names, descriptions and category.
func (r *GormMenuRepository) Search(keyword string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	like := "%" + keyword + "%"
	condition, argCount := buildLikeCondition(r.db, searchColumns)
	if err := r.db.Where(condition, repeatLikeArgs(like, argCount)...).
		Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Categories returns the distinct category slugs in menu order.
func (r *GormMenuRepository) Categories() ([]string, error) {
	var categories []string
	if err := r.db.Model(&models.MenuItem{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Create inserts a menu item.
func (r *GormMenuRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

// Update saves a menu item.
func (r *GormMenuRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

// UpdateRating stores the recomputed aggregate rating for one item.
func (r *GormMenuRepository) UpdateRating(id uint, rating float64, reviewsCount int) error {
	return r.db.Model(&models.MenuItem{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating":        rating,
			"reviews_count": reviewsCount,
		}).Error
}
