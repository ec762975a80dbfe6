package services

import (
	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/repository"
	"gorm.io/gorm"
)

// OrderService covers orders, their line items and the customization
// snapshots attached to line items. Orders are never soft-deleted; the
// deleted_at column exists but no code path writes it.
type OrderService struct {
	orders         *repository.Repository[models.Order]
	items          *repository.Repository[models.OrderItem]
	customizations *repository.Repository[models.OrderCustomization]
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		orders:         repository.New[models.Order](db),
		items:          repository.New[models.OrderItem](db),
		customizations: repository.New[models.OrderCustomization](db),
	}
}

func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orders.ListActive()
}

func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orders.GetByID(id)
}

func (s *OrderService) CreateOrder(order *models.Order) error {
	return s.orders.Create(order)
}

func (s *OrderService) UpdateOrder(id uint, patch models.OrderPatch) (*models.Order, error) {
	return s.orders.Update(id, patch)
}

func (s *OrderService) GetAllOrderItems() ([]models.OrderItem, error) {
	return s.items.ListActive()
}

func (s *OrderService) GetOrderItemByID(id uint) (*models.OrderItem, error) {
	return s.items.GetByID(id)
}

func (s *OrderService) CreateOrderItem(item *models.OrderItem) error {
	return s.items.Create(item)
}

func (s *OrderService) UpdateOrderItem(id uint, patch models.OrderItemPatch) (*models.OrderItem, error) {
	return s.items.Update(id, patch)
}

func (s *OrderService) GetOrderCustomizationByID(id uint) (*models.OrderCustomization, error) {
	return s.customizations.GetByID(id)
}

func (s *OrderService) CreateOrderCustomization(customization *models.OrderCustomization) error {
	return s.customizations.Create(customization)
}

func (s *OrderService) UpdateOrderCustomization(id uint, patch models.OrderCustomizationPatch) (*models.OrderCustomization, error) {
	return s.customizations.Update(id, patch)
}
