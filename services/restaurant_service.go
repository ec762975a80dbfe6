package services

import (
	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/repository"
	"gorm.io/gorm"
)

type RestaurantService struct {
	repo *repository.Repository[models.Restaurant]
	db   *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{
		repo: repository.New[models.Restaurant](db, repository.WithActiveColumn("is_active")),
		db:   db,
	}
}

func (s *RestaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	return s.repo.ListActive()
}

func (s *RestaurantService) GetRestaurantByID(id uint) (*models.Restaurant, error) {
	return s.repo.GetByID(id)
}

func (s *RestaurantService) CreateRestaurant(restaurant *models.Restaurant) error {
	return s.repo.Create(restaurant)
}

func (s *RestaurantService) UpdateRestaurant(id uint, patch models.RestaurantPatch) (*models.Restaurant, error) {
	return s.repo.Update(id, patch)
}

func (s *RestaurantService) DeleteRestaurant(id uint) (bool, error) {
	return s.repo.SoftDelete(id)
}

// MenuCategoryGroup is one category of the assembled menu with its available items.
type MenuCategoryGroup struct {
	ID        uint              `json:"id"`
	Name      string            `json:"name"`
	SortOrder int               `json:"sort_order"`
	MenuItems []models.MenuItem `json:"menu_items"`
}

type RestaurantMenu struct {
	RestaurantID   uint                `json:"restaurant_id"`
	RestaurantName string              `json:"restaurant_name"`
	Categories     []MenuCategoryGroup `json:"categories"`
}

// GetRestaurantMenu assembles the menu grouped by category. Returns (nil, nil)
// when the id does not resolve to an active restaurant. Runs one query per
// category, which is fine at the tens-of-categories scale this serves.
func (s *RestaurantService) GetRestaurantMenu(restaurantID uint) (*RestaurantMenu, error) {
	restaurant, err := s.repo.GetByID(restaurantID)
	if err != nil || restaurant == nil {
		return nil, err
	}

	var categories []models.Category
	if err := s.db.
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}

	menu := &RestaurantMenu{
		RestaurantID:   restaurant.ID,
		RestaurantName: restaurant.Name,
		Categories:     make([]MenuCategoryGroup, 0, len(categories)),
	}

	for _, category := range categories {
		var items []models.MenuItem
		if err := s.db.
			Where("category_id = ? AND is_available = ?", category.ID, true).
			Order("sort_order ASC, name ASC").
			Find(&items).Error; err != nil {
			return nil, err
		}
		menu.Categories = append(menu.Categories, MenuCategoryGroup{
			ID:        category.ID,
			Name:      category.Name,
			SortOrder: category.SortOrder,
			MenuItems: items,
		})
	}

	return menu, nil
}

// GetRestaurantAllergens returns the distinct allergens tagged on the
// restaurant's menu items, ordered by name. An empty result is valid; the
// caller is responsible for checking that the restaurant itself exists.
func (s *RestaurantService) GetRestaurantAllergens(restaurantID uint) ([]models.Allergen, error) {
	var allergens []models.Allergen
	err := s.db.
		Distinct("allergens.*").
		Joins("JOIN menu_item_allergens ON menu_item_allergens.allergen_id = allergens.id").
		Joins("JOIN menu_items ON menu_items.id = menu_item_allergens.menu_item_id").
		Where("menu_items.restaurant_id = ?", restaurantID).
		Order("allergens.name ASC").
		Find(&allergens).Error
	if err != nil {
		return nil, err
	}
	return allergens, nil
}
