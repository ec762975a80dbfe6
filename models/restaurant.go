package models

import "time"

type Restaurant struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(50);not null" json:"name" binding:"required,max=50"`
	Address     string     `gorm:"type:varchar(50)" json:"address" binding:"max=50"`
	Phone       string     `gorm:"type:varchar(50)" json:"phone" binding:"max=50"`
	Email       string     `gorm:"type:varchar(50)" json:"email" binding:"max=50"`
	Description string     `gorm:"type:text" json:"description"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`

	Tables      []Table      `gorm:"foreignKey:RestaurantID" json:"tables,omitempty"`
	Categories  []Category   `gorm:"foreignKey:RestaurantID" json:"categories,omitempty"`
	MenuItems   []MenuItem   `gorm:"foreignKey:RestaurantID" json:"menu_items,omitempty"`
	Ingredients []Ingredient `gorm:"foreignKey:RestaurantID" json:"ingredients,omitempty"`
	Orders      []Order      `gorm:"foreignKey:RestaurantID" json:"orders,omitempty"`
}

// RestaurantPatch carries the fields a PUT may change. Nil means "leave as is".
type RestaurantPatch struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Address     *string `json:"address" binding:"omitempty,max=50"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Email       *string `json:"email" binding:"omitempty,max=50"`
	Description *string `json:"description"`
}

func (p RestaurantPatch) Apply(r *Restaurant) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Address != nil {
		r.Address = *p.Address
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
}
