package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionWaste            TransactionType = "waste"
	TransactionOrderConsumption TransactionType = "order_consumption"
	TransactionAdjustment       TransactionType = "adjustment"
	TransactionRestock          TransactionType = "restock"
)

// InventoryTransaction is a ledger entry against an ingredient. The invariant
// quantity_after == quantity_before + quantity_change is recorded, not enforced.
type InventoryTransaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	IngredientID    uint            `gorm:"not null" json:"ingredient_id" binding:"required"`
	OrderID         *uint           `json:"order_id"`
	OrderItemID     *uint           `json:"order_item_id"`
	TransactionType TransactionType `gorm:"type:varchar(20);not null" json:"transaction_type" binding:"required,oneof=waste order_consumption adjustment restock"`
	QuantityChange  decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"quantity_change"`
	QuantityBefore  decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"quantity_before"`
	QuantityAfter   decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"quantity_after"`
	Notes           string          `gorm:"type:varchar(255)" json:"notes" binding:"max=255"`
	StaffID         *uint           `json:"staff_id"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Order      *Order      `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	OrderItem  *OrderItem  `gorm:"foreignKey:OrderItemID" json:"order_item,omitempty"`
}

type InventoryTransactionPatch struct {
	Notes   *string `json:"notes" binding:"omitempty,max=255"`
	StaffID *uint   `json:"staff_id"`
}

func (p InventoryTransactionPatch) Apply(t *InventoryTransaction) {
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.StaffID != nil {
		t.StaffID = p.StaffID
	}
}
