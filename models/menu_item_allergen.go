package models

type ContaminationRisk string

const (
	RiskContains   ContaminationRisk = "contains"
	RiskMayContain ContaminationRisk = "may_contain"
)

// MenuItemAllergen links menu items to allergens. Composite primary key,
// no surrogate id and no timestamps.
type MenuItemAllergen struct {
	MenuItemID        uint              `gorm:"primaryKey;autoIncrement:false" json:"menu_item_id"`
	AllergenID        uint              `gorm:"primaryKey;autoIncrement:false" json:"allergen_id" binding:"required"`
	ContaminationRisk ContaminationRisk `gorm:"type:varchar(20);not null" json:"contamination_risk" binding:"required,oneof=contains may_contain"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
	Allergen *Allergen `gorm:"foreignKey:AllergenID" json:"allergen,omitempty"`
}

type MenuItemAllergenPatch struct {
	ContaminationRisk *ContaminationRisk `json:"contamination_risk" binding:"omitempty,oneof=contains may_contain"`
}

func (p MenuItemAllergenPatch) Apply(m *MenuItemAllergen) {
	if p.ContaminationRisk != nil {
		m.ContaminationRisk = *p.ContaminationRisk
	}
}
