package services

import (
	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/repository"
	"gorm.io/gorm"
)

// CustomizationService covers customization options and their choices.
// Options are soft-deletable; choices only carry an availability flag that is
// flipped through Update, never through a delete path.
type CustomizationService struct {
	options *repository.Repository[models.CustomizationOption]
	choices *repository.Repository[models.CustomizationChoice]
}

func NewCustomizationService(db *gorm.DB) *CustomizationService {
	return &CustomizationService{
		options: repository.New[models.CustomizationOption](db, repository.WithActiveColumn("is_active")),
		choices: repository.New[models.CustomizationChoice](db),
	}
}

func (s *CustomizationService) GetAllOptions() ([]models.CustomizationOption, error) {
	return s.options.ListActive()
}

func (s *CustomizationService) GetOptionByID(id uint) (*models.CustomizationOption, error) {
	return s.options.GetByID(id)
}

func (s *CustomizationService) CreateOption(option *models.CustomizationOption) error {
	return s.options.Create(option)
}

func (s *CustomizationService) UpdateOption(id uint, patch models.CustomizationOptionPatch) (*models.CustomizationOption, error) {
	return s.options.Update(id, patch)
}

func (s *CustomizationService) DeleteOption(id uint) (bool, error) {
	return s.options.SoftDelete(id)
}

func (s *CustomizationService) GetAllChoices() ([]models.CustomizationChoice, error) {
	return s.choices.ListActive()
}

func (s *CustomizationService) GetChoiceByID(id uint) (*models.CustomizationChoice, error) {
	return s.choices.GetByID(id)
}

func (s *CustomizationService) CreateChoice(choice *models.CustomizationChoice) error {
	return s.choices.Create(choice)
}

func (s *CustomizationService) UpdateChoice(id uint, patch models.CustomizationChoicePatch) (*models.CustomizationChoice, error) {
	return s.choices.Update(id, patch)
}
