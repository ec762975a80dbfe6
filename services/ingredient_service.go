package services

import (
	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/repository"
	"gorm.io/gorm"
)

// IngredientService manages ingredients and the recipes that consume them.
// min_threshold/max_capacity are informational only; nothing enforces them.
type IngredientService struct {
	ingredients *repository.Repository[models.Ingredient]
	recipes     *repository.Repository[models.MenuItemRecipe]
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{
		ingredients: repository.New[models.Ingredient](db, repository.WithActiveColumn("is_active")),
		recipes:     repository.New[models.MenuItemRecipe](db),
	}
}

func (s *IngredientService) GetAllIngredients() ([]models.Ingredient, error) {
	return s.ingredients.ListActive()
}

func (s *IngredientService) GetIngredientByID(id uint) (*models.Ingredient, error) {
	return s.ingredients.GetByID(id)
}

func (s *IngredientService) CreateIngredient(ingredient *models.Ingredient) error {
	return s.ingredients.Create(ingredient)
}

func (s *IngredientService) UpdateIngredient(id uint, patch models.IngredientPatch) (*models.Ingredient, error) {
	return s.ingredients.Update(id, patch)
}

func (s *IngredientService) DeleteIngredient(id uint) (bool, error) {
	return s.ingredients.SoftDelete(id)
}

func (s *IngredientService) GetAllRecipes() ([]models.MenuItemRecipe, error) {
	return s.recipes.ListActive()
}

func (s *IngredientService) GetRecipeByID(id uint) (*models.MenuItemRecipe, error) {
	return s.recipes.GetByID(id)
}

func (s *IngredientService) CreateRecipe(recipe *models.MenuItemRecipe) error {
	return s.recipes.Create(recipe)
}

func (s *IngredientService) UpdateRecipe(id uint, patch models.MenuItemRecipePatch) (*models.MenuItemRecipe, error) {
	return s.recipes.Update(id, patch)
}
