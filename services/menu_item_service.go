package services

import (
	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/repository"
	"gorm.io/gorm"
)

type MenuItemService struct {
	repo      *repository.Repository[models.MenuItem]
	allergens *repository.MenuItemAllergenRepository
}

func NewMenuItemService(db *gorm.DB) *MenuItemService {
	return &MenuItemService{
		repo:      repository.New[models.MenuItem](db, repository.WithActiveColumn("is_available")),
		allergens: repository.NewMenuItemAllergenRepository(db),
	}
}

func (s *MenuItemService) GetAllMenuItems() ([]models.MenuItem, error) {
	return s.repo.ListActive()
}

func (s *MenuItemService) GetMenuItemByID(id uint) (*models.MenuItem, error) {
	return s.repo.GetByID(id)
}

func (s *MenuItemService) CreateMenuItem(item *models.MenuItem) error {
	return s.repo.Create(item)
}

func (s *MenuItemService) UpdateMenuItem(id uint, patch models.MenuItemPatch) (*models.MenuItem, error) {
	return s.repo.Update(id, patch)
}

func (s *MenuItemService) DeleteMenuItem(id uint) (bool, error) {
	return s.repo.SoftDelete(id)
}

// Allergen links (composite-keyed join rows).

func (s *MenuItemService) GetAllAllergenLinks() ([]models.MenuItemAllergen, error) {
	return s.allergens.ListAll()
}

func (s *MenuItemService) GetAllergenLink(menuItemID, allergenID uint) (*models.MenuItemAllergen, error) {
	return s.allergens.GetByIDs(menuItemID, allergenID)
}

func (s *MenuItemService) TagAllergen(link *models.MenuItemAllergen) error {
	return s.allergens.Create(link)
}

func (s *MenuItemService) UpdateAllergenLink(menuItemID, allergenID uint, patch models.MenuItemAllergenPatch) (*models.MenuItemAllergen, error) {
	return s.allergens.Update(menuItemID, allergenID, patch)
}
