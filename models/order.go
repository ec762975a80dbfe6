package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	RestaurantID       uint            `gorm:"not null" json:"restaurant_id" binding:"required"`
	TableID            uint            `gorm:"not null" json:"table_id" binding:"required"`
	Subtotal           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	ServiceCharge      decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"service_charge"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status             string          `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	PaymentStatus      string          `gorm:"type:varchar(50);not null;default:'pending'" json:"payment_status"`
	PaymentMethod      string          `gorm:"type:varchar(50)" json:"payment_method" binding:"max=50"`
	SpecialRequests    string          `gorm:"type:text" json:"special_requests"`
	OrderTime          *time.Time      `json:"order_time"`
	EstimatedReadyTime *time.Time      `json:"estimated_ready_time"`
	CompletedTime      *time.Time      `json:"completed_time"`
	DeletedAt          *time.Time      `json:"deleted_at,omitempty"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`

	Restaurant            *Restaurant            `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Table                 *Table                 `gorm:"foreignKey:TableID" json:"table,omitempty"`
	OrderItems            []OrderItem            `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
	InventoryTransactions []InventoryTransaction `gorm:"foreignKey:OrderID" json:"inventory_transactions,omitempty"`
}

type OrderPatch struct {
	Subtotal           *decimal.Decimal `json:"subtotal"`
	ServiceCharge      *decimal.Decimal `json:"service_charge"`
	TotalAmount        *decimal.Decimal `json:"total_amount"`
	Status             *string          `json:"status" binding:"omitempty,max=50"`
	PaymentStatus      *string          `json:"payment_status" binding:"omitempty,max=50"`
	PaymentMethod      *string          `json:"payment_method" binding:"omitempty,max=50"`
	SpecialRequests    *string          `json:"special_requests"`
	OrderTime          *time.Time       `json:"order_time"`
	EstimatedReadyTime *time.Time       `json:"estimated_ready_time"`
	CompletedTime      *time.Time       `json:"completed_time"`
}

func (p OrderPatch) Apply(o *Order) {
	if p.Subtotal != nil {
		o.Subtotal = *p.Subtotal
	}
	if p.ServiceCharge != nil {
		o.ServiceCharge = *p.ServiceCharge
	}
	if p.TotalAmount != nil {
		o.TotalAmount = *p.TotalAmount
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.PaymentStatus != nil {
		o.PaymentStatus = *p.PaymentStatus
	}
	if p.PaymentMethod != nil {
		o.PaymentMethod = *p.PaymentMethod
	}
	if p.SpecialRequests != nil {
		o.SpecialRequests = *p.SpecialRequests
	}
	if p.OrderTime != nil {
		o.OrderTime = p.OrderTime
	}
	if p.EstimatedReadyTime != nil {
		o.EstimatedReadyTime = p.EstimatedReadyTime
	}
	if p.CompletedTime != nil {
		o.CompletedTime = p.CompletedTime
	}
}
