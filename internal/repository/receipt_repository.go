package repository

import (
	"errors"

	"github.com/sofreh-next/internal/constants"
	"github.com/sofreh-next/internal/models"

	"gorm.io/gorm"
)

// ReceiptRepository is the data access interface for checkout receipts.
type ReceiptRepository interface {
	Create(receipt *models.Receipt) error
	GetByID(id uint) (*models.Receipt, error)
	GetByReceiptNo(receiptNo string) (*models.Receipt, error)
	MarkExpired(id uint) error
}

// GormReceiptRepository is the GORM implementation.
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a receipt repository.
func NewReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// Create inserts a receipt together with its line items.
func (r *GormReceiptRepository) Create(receipt *models.Receipt) error {
	return r.db.Create(receipt).Error
}

// GetByID returns one receipt with its items, or nil when it does not exist.
func (r *GormReceiptRepository) GetByID(id uint) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := r.db.Preload("Items").First(&receipt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &receipt, nil
}

// GetByReceiptNo returns one receipt by its public number, or nil.
func (r *GormReceiptRepository) GetByReceiptNo(receiptNo string) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := r.db.Preload("Items").Where("receipt_no = ?", receiptNo).
		First(&receipt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &receipt, nil
}

// MarkExpired flips the receipt to the expired status once the delivery
// window has elapsed.
func (r *GormReceiptRepository) MarkExpired(id uint) error {
	return r.db.Model(&models.Receipt{}).Where("id = ?", id).
		Update("status", constants.ReceiptStatusExpired).Error
}
