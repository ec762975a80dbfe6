package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ingredient struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	RestaurantID    uint             `gorm:"not null" json:"restaurant_id" binding:"required"`
	Name            string           `gorm:"type:varchar(50);not null" json:"name" binding:"required,max=50"`
	SKUCode         string           `gorm:"column:sku_code;type:varchar(50)" json:"sku_code" binding:"max=50"`
	Unit            string           `gorm:"type:varchar(20)" json:"unit" binding:"max=20"`
	UnitCost        *decimal.Decimal `gorm:"type:decimal(10,2)" json:"unit_cost"`
	MinThreshold    int              `gorm:"default:0" json:"min_threshold"`
	MaxCapacity     *int             `json:"max_capacity"`
	Category        string           `gorm:"type:varchar(50)" json:"category" binding:"max=50"`
	StorageLocation string           `gorm:"type:varchar(100)" json:"storage_location" binding:"max=100"`
	ShelfLifeDays   *int             `json:"shelf_life_days"`
	IsActive        bool             `gorm:"default:true" json:"is_active"`
	DeletedAt       *time.Time       `json:"deleted_at,omitempty"`
	CreatedAt       time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"not null" json:"updated_at"`

	Restaurant            *Restaurant            `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	MenuItemRecipes       []MenuItemRecipe       `gorm:"foreignKey:IngredientID" json:"menu_item_recipes,omitempty"`
	InventoryTransactions []InventoryTransaction `gorm:"foreignKey:IngredientID" json:"inventory_transactions,omitempty"`
}

type IngredientPatch struct {
	Name            *string          `json:"name" binding:"omitempty,max=50"`
	SKUCode         *string          `json:"sku_code" binding:"omitempty,max=50"`
	Unit            *string          `json:"unit" binding:"omitempty,max=20"`
	UnitCost        *decimal.Decimal `json:"unit_cost"`
	MinThreshold    *int             `json:"min_threshold"`
	MaxCapacity     *int             `json:"max_capacity"`
	Category        *string          `json:"category" binding:"omitempty,max=50"`
	StorageLocation *string          `json:"storage_location" binding:"omitempty,max=100"`
	ShelfLifeDays   *int             `json:"shelf_life_days"`
}

func (p IngredientPatch) Apply(i *Ingredient) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.SKUCode != nil {
		i.SKUCode = *p.SKUCode
	}
	if p.Unit != nil {
		i.Unit = *p.Unit
	}
	if p.UnitCost != nil {
		i.UnitCost = p.UnitCost
	}
	if p.MinThreshold != nil {
		i.MinThreshold = *p.MinThreshold
	}
	if p.MaxCapacity != nil {
		i.MaxCapacity = p.MaxCapacity
	}
	if p.Category != nil {
		i.Category = *p.Category
	}
	if p.StorageLocation != nil {
		i.StorageLocation = *p.StorageLocation
	}
	if p.ShelfLifeDays != nil {
		i.ShelfLifeDays = p.ShelfLifeDays
	}
}
