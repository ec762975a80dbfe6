package services

import (
	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/repository"
	"gorm.io/gorm"
)

// AllergenService manages the shared allergen reference data. Allergens are
// never soft-deleted; they are referenced, not owned, by menu items.
type AllergenService struct {
	repo *repository.Repository[models.Allergen]
}

func NewAllergenService(db *gorm.DB) *AllergenService {
	return &AllergenService{repo: repository.New[models.Allergen](db)}
}

func (s *AllergenService) GetAllAllergens() ([]models.Allergen, error) {
	return s.repo.ListActive()
}

func (s *AllergenService) GetAllergenByID(id uint) (*models.Allergen, error) {
	return s.repo.GetByID(id)
}

func (s *AllergenService) CreateAllergen(allergen *models.Allergen) error {
	return s.repo.Create(allergen)
}

func (s *AllergenService) UpdateAllergen(id uint, patch models.AllergenPatch) (*models.Allergen, error) {
	return s.repo.Update(id, patch)
}
