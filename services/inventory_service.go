package services

import (
	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/repository"
	"gorm.io/gorm"
)

// InventoryService records ledger entries against ingredients. Entries are
// append-mostly: only notes and staff attribution are patchable afterwards.
type InventoryService struct {
	repo *repository.Repository[models.InventoryTransaction]
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{repo: repository.New[models.InventoryTransaction](db)}
}

func (s *InventoryService) GetAllTransactions() ([]models.InventoryTransaction, error) {
	return s.repo.ListActive()
}

func (s *InventoryService) GetTransactionByID(id uint) (*models.InventoryTransaction, error) {
	return s.repo.GetByID(id)
}

func (s *InventoryService) CreateTransaction(transaction *models.InventoryTransaction) error {
	return s.repo.Create(transaction)
}

func (s *InventoryService) UpdateTransaction(id uint, patch models.InventoryTransactionPatch) (*models.InventoryTransaction, error) {
	return s.repo.Update(id, patch)
}
