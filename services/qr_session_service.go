package services

import (
	"errors"
	"time"

	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/repository"
	"github.com/Brianlih/orderflow-be/utils"
	"gorm.io/gorm"
)

// DefaultSessionTTL bounds a QR ordering session when the client doesn't
// supply its own expiry.
const DefaultSessionTTL = 2 * time.Hour

type QRSessionService struct {
	repo *repository.Repository[models.QRSession]
	db   *gorm.DB
}

func NewQRSessionService(db *gorm.DB) *QRSessionService {
	return &QRSessionService{
		repo: repository.New[models.QRSession](db),
		db:   db,
	}
}

func (s *QRSessionService) GetAllSessions() ([]models.QRSession, error) {
	return s.repo.ListActive()
}

func (s *QRSessionService) GetSessionByID(id uint) (*models.QRSession, error) {
	return s.repo.GetByID(id)
}

// CreateSession stores a session for a known table id, issuing a signed
// session token and expiry when the caller didn't bring them.
func (s *QRSessionService) CreateSession(session *models.QRSession) error {
	now := time.Now()
	if session.ExpiresAt == nil {
		expires := now.Add(DefaultSessionTTL)
		session.ExpiresAt = &expires
	}
	if session.LastActivity == nil {
		session.LastActivity = &now
	}
	if session.SessionToken == "" {
		token, err := utils.GenerateSessionToken(session.TableID, session.ExpiresAt.Sub(now))
		if err != nil {
			return err
		}
		session.SessionToken = token
	}
	return s.repo.Create(session)
}

// OpenSessionForTable resolves a table by its printed QR code token and opens
// a session against it. Returns (nil, nil) when no table carries the token.
func (s *QRSessionService) OpenSessionForTable(qrCodeToken string) (*models.QRSession, error) {
	var table models.Table
	err := s.db.Where("qr_code_token = ?", qrCodeToken).First(&table).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	session := &models.QRSession{TableID: table.ID}
	if err := s.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *QRSessionService) UpdateSession(id uint, patch models.QRSessionPatch) (*models.QRSession, error) {
	return s.repo.Update(id, patch)
}

// TouchSession stamps last_activity on an open session.
func (s *QRSessionService) TouchSession(id uint) (*models.QRSession, error) {
	now := time.Now()
	return s.repo.Update(id, models.QRSessionPatch{LastActivity: &now})
}
