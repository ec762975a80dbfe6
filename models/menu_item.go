package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	RestaurantID uint            `gorm:"not null" json:"restaurant_id" binding:"required"`
	CategoryID   uint            `gorm:"not null" json:"category_id" binding:"required"`
	Name         string          `gorm:"type:varchar(50);not null" json:"name" binding:"required,max=50"`
	Description  string          `gorm:"type:text" json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL     string          `gorm:"type:varchar(512)" json:"image_url" binding:"max=512"`
	SpiceLevel   int             `gorm:"default:0" json:"spice_level"`
	IsAvailable  bool            `gorm:"default:true" json:"is_available"`
	SortOrder    int             `gorm:"default:0" json:"sort_order"`
	DeletedAt    *time.Time      `json:"deleted_at,omitempty"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`

	Restaurant           *Restaurant           `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Category             *Category             `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	OrderItems           []OrderItem           `gorm:"foreignKey:ItemID" json:"order_items,omitempty"`
	CustomizationOptions []CustomizationOption `gorm:"foreignKey:ItemID" json:"customization_options,omitempty"`
	MenuItemAllergens    []MenuItemAllergen    `gorm:"foreignKey:MenuItemID" json:"menu_item_allergens,omitempty"`
	MenuItemRecipes      []MenuItemRecipe      `gorm:"foreignKey:MenuItemID" json:"menu_item_recipes,omitempty"`
}

type MenuItemPatch struct {
	CategoryID  *uint            `json:"category_id"`
	Name        *string          `json:"name" binding:"omitempty,max=50"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url" binding:"omitempty,max=512"`
	SpiceLevel  *int             `json:"spice_level"`
	SortOrder   *int             `json:"sort_order"`
}

func (p MenuItemPatch) Apply(m *MenuItem) {
	if p.CategoryID != nil {
		m.CategoryID = *p.CategoryID
	}
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.ImageURL != nil {
		m.ImageURL = *p.ImageURL
	}
	if p.SpiceLevel != nil {
		m.SpiceLevel = *p.SpiceLevel
	}
	if p.SortOrder != nil {
		m.SortOrder = *p.SortOrder
	}
}
