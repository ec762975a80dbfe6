package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem keeps its legacy order_item_id primary key column. It carries a
// created_at but no updated_at, matching the persisted schema.
type OrderItem struct {
	ID         uint            `gorm:"column:order_item_id;primaryKey" json:"order_item_id"`
	OrderID    uint            `gorm:"not null" json:"order_id" binding:"required"`
	ItemID     uint            `gorm:"not null" json:"item_id" binding:"required"`
	Quantity   int             `gorm:"not null" json:"quantity" binding:"required,min=1"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status     string          `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`

	Order                 *Order                 `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	MenuItem              *MenuItem              `gorm:"foreignKey:ItemID" json:"menu_item,omitempty"`
	OrderCustomizations   []OrderCustomization   `gorm:"foreignKey:OrderItemID" json:"order_customizations,omitempty"`
	InventoryTransactions []InventoryTransaction `gorm:"foreignKey:OrderItemID" json:"inventory_transactions,omitempty"`
}

type OrderItemPatch struct {
	Quantity   *int             `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	TotalPrice *decimal.Decimal `json:"total_price"`
	Status     *string          `json:"status" binding:"omitempty,max=50"`
}

func (p OrderItemPatch) Apply(i *OrderItem) {
	if p.Quantity != nil {
		i.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		i.UnitPrice = *p.UnitPrice
	}
	if p.TotalPrice != nil {
		i.TotalPrice = *p.TotalPrice
	}
	if p.Status != nil {
		i.Status = *p.Status
	}
}
