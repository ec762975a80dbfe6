package models

import "time"

type CustomizationOption struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ItemID        uint      `gorm:"not null" json:"item_id" binding:"required"`
	Name          string    `gorm:"type:varchar(50);not null" json:"name" binding:"required,max=50"`
	Type          string    `gorm:"type:varchar(50);not null" json:"type" binding:"required,max=50"`
	IsRequired    bool      `gorm:"default:false" json:"is_required"`
	MaxSelections int       `gorm:"default:1" json:"max_selections"`
	SortOrder     int       `gorm:"default:0" json:"sort_order"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`

	MenuItem             *MenuItem             `gorm:"foreignKey:ItemID" json:"menu_item,omitempty"`
	CustomizationChoices []CustomizationChoice `gorm:"foreignKey:OptionID" json:"customization_choices,omitempty"`
	OrderCustomizations  []OrderCustomization  `gorm:"foreignKey:OptionID" json:"order_customizations,omitempty"`
}

type CustomizationOptionPatch struct {
	Name          *string `json:"name" binding:"omitempty,max=50"`
	Type          *string `json:"type" binding:"omitempty,max=50"`
	IsRequired    *bool   `json:"is_required"`
	MaxSelections *int    `json:"max_selections"`
	SortOrder     *int    `json:"sort_order"`
}

func (p CustomizationOptionPatch) Apply(o *CustomizationOption) {
	if p.Name != nil {
		o.Name = *p.Name
	}
	if p.Type != nil {
		o.Type = *p.Type
	}
	if p.IsRequired != nil {
		o.IsRequired = *p.IsRequired
	}
	if p.MaxSelections != nil {
		o.MaxSelections = *p.MaxSelections
	}
	if p.SortOrder != nil {
		o.SortOrder = *p.SortOrder
	}
}
