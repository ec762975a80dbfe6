package models

import "time"

type Category struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null" json:"restaurant_id" binding:"required"`
	Name         string     `gorm:"type:varchar(50);not null" json:"name" binding:"required,max=50"`
	SortOrder    int        `gorm:"default:0" json:"sort_order"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	MenuItems  []MenuItem  `gorm:"foreignKey:CategoryID" json:"menu_items,omitempty"`
}

type CategoryPatch struct {
	Name      *string `json:"name" binding:"omitempty,max=50"`
	SortOrder *int    `json:"sort_order"`
}

func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.SortOrder != nil {
		c.SortOrder = *p.SortOrder
	}
}
