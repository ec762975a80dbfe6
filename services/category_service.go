package services

import (
	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/repository"
	"gorm.io/gorm"
)

type CategoryService struct {
	repo *repository.Repository[models.Category]
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{
		repo: repository.New[models.Category](db, repository.WithActiveColumn("is_active")),
	}
}

func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.ListActive()
}

func (s *CategoryService) GetCategoryByID(id uint) (*models.Category, error) {
	return s.repo.GetByID(id)
}

func (s *CategoryService) CreateCategory(category *models.Category) error {
	return s.repo.Create(category)
}

func (s *CategoryService) UpdateCategory(id uint, patch models.CategoryPatch) (*models.Category, error) {
	return s.repo.Update(id, patch)
}

func (s *CategoryService) DeleteCategory(id uint) (bool, error) {
	return s.repo.SoftDelete(id)
}
