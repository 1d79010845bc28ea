package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Allergen is one bilingual allergen entry.
type Allergen struct {
	En string `json:"en"`
	Fa string `json:"fa"`
}

// AllergenList column type storing the allergen entries as JSON.
type AllergenList []Allergen

// Value implements driver.Valuer.
func (a AllergenList) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner.
func (a *AllergenList) Scan(value interface{}) error {
	if value == nil {
		*a = AllergenList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// MenuItem is one dish on the menu, with parallel English/Farsi display
// fields. The Farsi price is pre-formatted display text, not an amount; the
// numeric price lives in PriceEn only.
type MenuItem struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Category         string         `gorm:"type:varchar(80);not null;index" json:"category"`
	NameEn           string         `gorm:"type:varchar(200);not null" json:"name_en"`
	NameFa           string         `gorm:"type:varchar(200)" json:"name_fa"`
	DescriptionEn    string         `gorm:"type:text" json:"description_en"`
	DescriptionFa    string         `gorm:"type:text" json:"description_fa"`
	PriceEn          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_en"`
	PriceFa          string         `gorm:"type:varchar(60)" json:"price_fa"`
	IsPopular        bool           `gorm:"default:false;index" json:"is_popular"`
	Nutrition        JSON           `gorm:"type:json" json:"nutritional_info"`
	Allergens        AllergenList   `gorm:"type:json" json:"allergens"`
	Images           StringArray    `gorm:"type:json" json:"images"`
	EstimatedMinutes int            `gorm:"default:0" json:"estimated_delivery_time_minutes"`
	Rating           float64        `gorm:"default:0" json:"rating"`
	ReviewsCount     int            `gorm:"default:0" json:"reviews_count"`
	SortOrder        int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (MenuItem) TableName() string {
	return "menu_items"
}
