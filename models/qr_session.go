package models

import "time"

// QRSession is a time-boxed ordering session opened by scanning a table's QR code.
type QRSession struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TableID      uint       `gorm:"not null" json:"table_id" binding:"required"`
	SessionToken string     `gorm:"type:varchar(255);unique;not null" json:"session_token"`
	Status       string     `gorm:"type:varchar(50);not null;default:'active'" json:"status"`
	ExpiresAt    *time.Time `json:"expires_at"`
	LastActivity *time.Time `json:"last_activity"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`

	Table *Table `gorm:"foreignKey:TableID" json:"table,omitempty"`
}

type QRSessionPatch struct {
	Status       *string    `json:"status" binding:"omitempty,max=50"`
	ExpiresAt    *time.Time `json:"expires_at"`
	LastActivity *time.Time `json:"last_activity"`
}

func (p QRSessionPatch) Apply(s *QRSession) {
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.ExpiresAt != nil {
		s.ExpiresAt = p.ExpiresAt
	}
	if p.LastActivity != nil {
		s.LastActivity = p.LastActivity
	}
}
