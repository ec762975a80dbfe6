package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Brianlih/orderflow-be/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.Restaurant{},
		&models.Table{},
		&models.Category{},
		&models.Allergen{},
		&models.MenuItem{},
		&models.MenuItemAllergen{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestListActiveExcludesInactiveRows(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Restaurant](db, WithActiveColumn("is_active"))

	db.Create(&models.Restaurant{Name: "Open Kitchen", IsActive: true})
	db.Create(&models.Restaurant{Name: "Closed Kitchen"})
	db.Model(&models.Restaurant{}).Where("name = ?", "Closed Kitchen").Update("is_active", false)

	restaurants, err := repo.ListActive()
	assert.NoError(t, err)
	assert.Len(t, restaurants, 1)
	assert.Equal(t, "Open Kitchen", restaurants[0].Name)
	for _, r := range restaurants {
		assert.True(t, r.IsActive)
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Restaurant](db, WithActiveColumn("is_active"))

	restaurant := models.Restaurant{
		Name:    "Warung Noodle",
		Address: "12 Harbor Road",
		Phone:   "555-0101",
	}
	err := repo.Create(&restaurant)
	assert.NoError(t, err)
	assert.NotZero(t, restaurant.ID)
	assert.False(t, restaurant.CreatedAt.IsZero())

	got, err := repo.GetByID(restaurant.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "Warung Noodle", got.Name)
	assert.Equal(t, "12 Harbor Road", got.Address)
	assert.Equal(t, "555-0101", got.Phone)
	assert.True(t, got.IsActive)
}

func TestGetByIDMissingReturnsNilNotError(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Restaurant](db, WithActiveColumn("is_active"))

	got, err := repo.GetByID(999)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateAppliesOnlyPresentFields(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Restaurant](db, WithActiveColumn("is_active"))

	restaurant := models.Restaurant{Name: "Old Name", Address: "Keep Me"}
	assert.NoError(t, repo.Create(&restaurant))

	newName := "New Name"
	updated, err := repo.Update(restaurant.ID, models.RestaurantPatch{Name: &newName})
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Keep Me", updated.Address)
}

func TestUpdateEmptyPatchOnlyRefreshesUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Restaurant](db, WithActiveColumn("is_active"))

	restaurant := models.Restaurant{Name: "Steady", Address: "Same Street"}
	assert.NoError(t, repo.Create(&restaurant))
	before := restaurant.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	updated, err := repo.Update(restaurant.ID, models.RestaurantPatch{})
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, "Steady", updated.Name)
	assert.Equal(t, "Same Street", updated.Address)
	assert.True(t, updated.UpdatedAt.After(before))
}

func TestUpdateMissingReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Restaurant](db, WithActiveColumn("is_active"))

	name := "Ghost"
	updated, err := repo.Update(42, models.RestaurantPatch{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestSoftDeleteHidesRowAndReportsFalseSecondTime(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Restaurant](db, WithActiveColumn("is_active"))

	restaurant := models.Restaurant{Name: "Fadeaway"}
	assert.NoError(t, repo.Create(&restaurant))

	deleted, err := repo.SoftDelete(restaurant.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetByID(restaurant.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	// The active-filtered lookup no longer sees the row, so a second soft
	// delete reports not-found rather than succeeding again.
	deleted, err = repo.SoftDelete(restaurant.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestSoftDeleteMissingReturnsFalse(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Restaurant](db, WithActiveColumn("is_active"))

	deleted, err := repo.SoftDelete(12345)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestSoftDeleteWithoutActiveFlagFails(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Table](db)

	_, err := repo.SoftDelete(1)
	assert.ErrorIs(t, err, ErrNotSoftDeletable)
}

func TestMenuItemAvailabilityFlag(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.MenuItem](db, WithActiveColumn("is_available"))

	db.Create(&models.Restaurant{Name: "R"})
	db.Create(&models.Category{RestaurantID: 1, Name: "Mains"})

	item := models.MenuItem{
		RestaurantID: 1,
		CategoryID:   1,
		Name:         "Fried Rice",
		Price:        decimal.RequireFromString("8.50"),
	}
	assert.NoError(t, repo.Create(&item))

	deleted, err := repo.SoftDelete(item.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	items, err := repo.ListActive()
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestMenuItemAllergenCompositeKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuItemAllergenRepository(db)

	db.Create(&models.Restaurant{Name: "R"})
	db.Create(&models.Category{RestaurantID: 1, Name: "Mains"})
	db.Create(&models.MenuItem{RestaurantID: 1, CategoryID: 1, Name: "Satay", Price: decimal.RequireFromString("6.00")})
	db.Create(&models.Allergen{I18nKey: "allergen.peanuts", Name: "Peanuts"})

	link := models.MenuItemAllergen{
		MenuItemID:        1,
		AllergenID:        1,
		ContaminationRisk: models.RiskContains,
	}
	assert.NoError(t, repo.Create(&link))

	got, err := repo.GetByIDs(1, 1)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, models.RiskContains, got.ContaminationRisk)

	missing, err := repo.GetByIDs(1, 99)
	assert.NoError(t, err)
	assert.Nil(t, missing)

	risk := models.RiskMayContain
	updated, err := repo.Update(1, 1, models.MenuItemAllergenPatch{ContaminationRisk: &risk})
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, models.RiskMayContain, updated.ContaminationRisk)
}
