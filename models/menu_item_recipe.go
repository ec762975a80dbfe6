package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItemRecipe links a menu item to the ingredients it consumes.
type MenuItemRecipe struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	MenuItemID     uint            `gorm:"not null" json:"menu_item_id" binding:"required"`
	IngredientID   uint            `gorm:"not null" json:"ingredient_id" binding:"required"`
	QuantityNeeded decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"quantity_needed"`
	Unit           string          `gorm:"type:varchar(20)" json:"unit" binding:"max=20"`
	IsCritical     bool            `gorm:"default:false" json:"is_critical"`
	Notes          string          `gorm:"type:varchar(255)" json:"notes" binding:"max=255"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`

	MenuItem   *MenuItem   `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

type MenuItemRecipePatch struct {
	QuantityNeeded *decimal.Decimal `json:"quantity_needed"`
	Unit           *string          `json:"unit" binding:"omitempty,max=20"`
	IsCritical     *bool            `json:"is_critical"`
	Notes          *string          `json:"notes" binding:"omitempty,max=255"`
}

func (p MenuItemRecipePatch) Apply(r *MenuItemRecipe) {
	if p.QuantityNeeded != nil {
		r.QuantityNeeded = *p.QuantityNeeded
	}
	if p.Unit != nil {
		r.Unit = *p.Unit
	}
	if p.IsCritical != nil {
		r.IsCritical = *p.IsCritical
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}
