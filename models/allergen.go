package models

import "time"

// Allergen is shared reference data, not scoped to a restaurant.
type Allergen struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	I18nKey       string    `gorm:"type:varchar(50);not null" json:"i18n_key" binding:"required,max=50"`
	Name          string    `gorm:"type:varchar(50);not null" json:"name" binding:"required,max=50"`
	IconURL       string    `gorm:"type:varchar(512)" json:"icon_url" binding:"max=512"`
	SeverityLevel int       `gorm:"default:1" json:"severity_level"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`

	MenuItemAllergens []MenuItemAllergen `gorm:"foreignKey:AllergenID" json:"menu_item_allergens,omitempty"`
}

type AllergenPatch struct {
	I18nKey       *string `json:"i18n_key" binding:"omitempty,max=50"`
	Name          *string `json:"name" binding:"omitempty,max=50"`
	IconURL       *string `json:"icon_url" binding:"omitempty,max=512"`
	SeverityLevel *int    `json:"severity_level"`
}

func (p AllergenPatch) Apply(a *Allergen) {
	if p.I18nKey != nil {
		a.I18nKey = *p.I18nKey
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.IconURL != nil {
		a.IconURL = *p.IconURL
	}
	if p.SeverityLevel != nil {
		a.SeverityLevel = *p.SeverityLevel
	}
}
