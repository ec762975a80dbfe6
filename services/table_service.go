package services

import (
	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TableService struct {
	repo *repository.Repository[models.Table]
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{repo: repository.New[models.Table](db)}
}

func (s *TableService) GetAllTables() ([]models.Table, error) {
	return s.repo.ListActive()
}

func (s *TableService) GetTableByID(id uint) (*models.Table, error) {
	return s.repo.GetByID(id)
}

// CreateTable assigns a fresh QR code token when the caller didn't bring one.
func (s *TableService) CreateTable(table *models.Table) error {
	if table.QRCodeToken == "" {
		table.QRCodeToken = uuid.NewString()
	}
	return s.repo.Create(table)
}

func (s *TableService) UpdateTable(id uint, patch models.TablePatch) (*models.Table, error) {
	return s.repo.Update(id, patch)
}
