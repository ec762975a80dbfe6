package repository

import (
	"errors"

	"github.com/Brianlih/orderflow-be/models"
	"gorm.io/gorm"
)

// MenuItemAllergenRepository covers the one join table keyed by a composite
// of both foreign keys instead of a surrogate id.
type MenuItemAllergenRepository struct {
	db *gorm.DB
}

func NewMenuItemAllergenRepository(db *gorm.DB) *MenuItemAllergenRepository {
	return &MenuItemAllergenRepository{db: db}
}

func (r *MenuItemAllergenRepository) ListAll() ([]models.MenuItemAllergen, error) {
	var links []models.MenuItemAllergen
	if err := r.db.Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *MenuItemAllergenRepository) GetByIDs(menuItemID, allergenID uint) (*models.MenuItemAllergen, error) {
	var link models.MenuItemAllergen
	err := r.db.
		Where("menu_item_id = ? AND allergen_id = ?", menuItemID, allergenID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *MenuItemAllergenRepository) Create(link *models.MenuItemAllergen) error {
	return r.db.Create(link).Error
}

func (r *MenuItemAllergenRepository) Update(menuItemID, allergenID uint, patch models.MenuItemAllergenPatch) (*models.MenuItemAllergen, error) {
	link, err := r.GetByIDs(menuItemID, allergenID)
	if err != nil || link == nil {
		return nil, err
	}
	patch.Apply(link)
	if err := r.db.Save(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}
