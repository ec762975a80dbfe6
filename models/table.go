package models

import "time"

type Table struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null" json:"restaurant_id" binding:"required"`
	Name         string     `gorm:"type:varchar(50);not null" json:"name" binding:"required,max=50"`
	QRCodeToken  string     `gorm:"type:varchar(50);unique" json:"qr_code_token"`
	Status       string     `gorm:"type:varchar(50);not null;default:'available'" json:"status"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Orders     []Order     `gorm:"foreignKey:TableID" json:"orders,omitempty"`
	QRSessions []QRSession `gorm:"foreignKey:TableID" json:"qr_sessions,omitempty"`
}

type TablePatch struct {
	Name   *string `json:"name" binding:"omitempty,max=50"`
	Status *string `json:"status" binding:"omitempty,max=50"`
}

func (p TablePatch) Apply(t *Table) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}
