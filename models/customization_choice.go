package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomizationChoice struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OptionID      uint            `gorm:"not null" json:"option_id" binding:"required"`
	Name          string          `gorm:"type:varchar(50);not null" json:"name" binding:"required,max=50"`
	PriceModifier decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price_modifier"`
	IsAvailable   bool            `gorm:"default:true" json:"is_available"`
	SortOrder     int             `gorm:"default:0" json:"sort_order"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`

	CustomizationOption *CustomizationOption `gorm:"foreignKey:OptionID" json:"customization_option,omitempty"`
	OrderCustomizations []OrderCustomization `gorm:"foreignKey:ChoiceID" json:"order_customizations,omitempty"`
}

type CustomizationChoicePatch struct {
	Name          *string          `json:"name" binding:"omitempty,max=50"`
	PriceModifier *decimal.Decimal `json:"price_modifier"`
	IsAvailable   *bool            `json:"is_available"`
	SortOrder     *int             `json:"sort_order"`
}

func (p CustomizationChoicePatch) Apply(c *CustomizationChoice) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.PriceModifier != nil {
		c.PriceModifier = *p.PriceModifier
	}
	if p.IsAvailable != nil {
		c.IsAvailable = *p.IsAvailable
	}
	if p.SortOrder != nil {
		c.SortOrder = *p.SortOrder
	}
}
