package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderCustomization snapshots the chosen option/choice pairing and its
// price_modifier at order time, so later choice edits don't rewrite history.
type OrderCustomization struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderItemID   uint            `gorm:"not null" json:"order_item_id" binding:"required"`
	OptionID      uint            `gorm:"not null" json:"option_id" binding:"required"`
	ChoiceID      uint            `gorm:"not null" json:"choice_id" binding:"required"`
	PriceModifier decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price_modifier"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`

	OrderItem           *OrderItem           `gorm:"foreignKey:OrderItemID" json:"order_item,omitempty"`
	CustomizationOption *CustomizationOption `gorm:"foreignKey:OptionID" json:"customization_option,omitempty"`
	CustomizationChoice *CustomizationChoice `gorm:"foreignKey:ChoiceID" json:"customization_choice,omitempty"`
}

type OrderCustomizationPatch struct {
	PriceModifier *decimal.Decimal `json:"price_modifier"`
}

func (p OrderCustomizationPatch) Apply(c *OrderCustomization) {
	if p.PriceModifier != nil {
		c.PriceModifier = *p.PriceModifier
	}
}
