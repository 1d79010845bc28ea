package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is one customer review of a menu item.
type Review struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	MenuItemID uint           `gorm:"not null;index" json:"item_id"`
	UserName   string         `gorm:"type:varchar(120);not null" json:"user_name"`
	Rating     int            `gorm:"not null" json:"rating"`
	Comment    string         `gorm:"type:text;not null" json:"comment"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
}

// TableName sets the table name.
func (Review) TableName() string {
	return "reviews"
}
