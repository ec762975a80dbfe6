package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/utils"
)

func TestCreateTableAssignsQRCodeToken(t *testing.T) {
	db := setupTestDB(t)
	service := NewTableService(db)

	restaurant := seedRestaurant(t, db, "Harbor Grill")
	table := models.Table{RestaurantID: restaurant.ID, Name: "T1"}
	assert.NoError(t, service.CreateTable(&table))
	assert.NotEmpty(t, table.QRCodeToken)

	// A caller-supplied token is kept as-is.
	second := models.Table{RestaurantID: restaurant.ID, Name: "T2", QRCodeToken: "printed-token-7"}
	assert.NoError(t, service.CreateTable(&second))
	assert.Equal(t, "printed-token-7", second.QRCodeToken)
}

func TestCreateSessionFillsTokenAndExpiry(t *testing.T) {
	db := setupTestDB(t)
	service := NewQRSessionService(db)

	restaurant := seedRestaurant(t, db, "Harbor Grill")
	table := models.Table{RestaurantID: restaurant.ID, Name: "T1", QRCodeToken: "tok-1"}
	db.Create(&table)

	session := models.QRSession{TableID: table.ID}
	assert.NoError(t, service.CreateSession(&session))
	assert.NotEmpty(t, session.SessionToken)
	assert.NotNil(t, session.ExpiresAt)
	assert.NotNil(t, session.LastActivity)
	assert.WithinDuration(t, time.Now().Add(DefaultSessionTTL), *session.ExpiresAt, time.Minute)

	claims, err := utils.ValidateSessionToken(session.SessionToken)
	assert.NoError(t, err)
	assert.Equal(t, table.ID, claims.TableID)
}

func TestOpenSessionForTable(t *testing.T) {
	db := setupTestDB(t)
	service := NewQRSessionService(db)

	restaurant := seedRestaurant(t, db, "Harbor Grill")
	table := models.Table{RestaurantID: restaurant.ID, Name: "T1", QRCodeToken: "tok-scan"}
	db.Create(&table)

	session, err := service.OpenSessionForTable("tok-scan")
	assert.NoError(t, err)
	assert.NotNil(t, session)
	assert.Equal(t, table.ID, session.TableID)
	assert.NotEmpty(t, session.SessionToken)

	missing, err := service.OpenSessionForTable("no-such-token")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTouchSessionAdvancesLastActivity(t *testing.T) {
	db := setupTestDB(t)
	service := NewQRSessionService(db)

	restaurant := seedRestaurant(t, db, "Harbor Grill")
	table := models.Table{RestaurantID: restaurant.ID, Name: "T1", QRCodeToken: "tok-2"}
	db.Create(&table)

	session := models.QRSession{TableID: table.ID}
	assert.NoError(t, service.CreateSession(&session))
	before := *session.LastActivity

	time.Sleep(10 * time.Millisecond)

	touched, err := service.TouchSession(session.ID)
	assert.NoError(t, err)
	assert.NotNil(t, touched)
	assert.True(t, touched.LastActivity.After(before))
}
