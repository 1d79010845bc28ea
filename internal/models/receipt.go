package models

import (
	"time"

	"gorm.io/gorm"
)

// Receipt is the record produced by the simulated checkout. It mirrors the
// receipt the client renders on the payment-successful page and is removed
// by the worker once the delivery window has elapsed.
type Receipt struct {
	ID                    uint           `gorm:"primarykey" json:"id"`
	ReceiptNo             string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"receipt_no"`
	Status                string         `gorm:"type:varchar(20);not null;default:'placed';index" json:"status"`
	TotalItems            int            `gorm:"not null" json:"total_items"`
	TotalAmount           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	FormattedTotal        string         `gorm:"type:varchar(60)" json:"formatted_total"`
	FormattedTotalFa      string         `gorm:"type:varchar(60)" json:"formatted_total_fa"`
	DeliveryTime          string         `gorm:"type:varchar(40)" json:"delivery_time"`
	IsComingNow           bool           `gorm:"default:false" json:"is_coming_now"`
	TableNumber           string         `gorm:"type:varchar(20)" json:"table_number"`
	IsSelectingTableLater bool           `gorm:"default:false" json:"is_selecting_table_later"`
	MinEstimateMinutes    int            `gorm:"default:0" json:"min_estimate"`
	MaxEstimateMinutes    int            `gorm:"default:0" json:"max_estimate"`
	PlacedAt              time.Time      `gorm:"index" json:"timestamp"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`

	Items []ReceiptItem `gorm:"foreignKey:ReceiptID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Receipt) TableName() string {
	return "receipts"
}

// ReceiptItem is one line of a receipt, with its per-line totals formatted
// in both display locales.
type ReceiptItem struct {
	ID               uint   `gorm:"primarykey" json:"id"`
	ReceiptID        uint   `gorm:"not null;index" json:"receipt_id"`
	ProductID        string `gorm:"type:varchar(40);not null" json:"product_id"`
	NameEn           string `gorm:"type:varchar(200);not null" json:"name_en"`
	NameFa           string `gorm:"type:varchar(200)" json:"name_fa"`
	Quantity         int    `gorm:"not null" json:"quantity"`
	FormattedPriceEn string `gorm:"type:varchar(60)" json:"formatted_price_en"`
	FormattedPriceFa string `gorm:"type:varchar(60)" json:"formatted_price_fa"`
}

// TableName sets the table name.
func (ReceiptItem) TableName() string {
	return "receipt_items"
}
