package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/services"
	"github.com/Brianlih/orderflow-be/utils"
)

type QRSessionController struct {
	service *services.QRSessionService
}

func NewQRSessionController(service *services.QRSessionService) *QRSessionController {
	return &QRSessionController{service: service}
}

func (qc *QRSessionController) GetAllSessions(c *gin.Context) {
	sessions, err := qc.service.GetAllSessions()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of QR sessions", sessions)
}

func (qc *QRSessionController) GetSessionByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("session_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid session id"))
		return
	}

	session, err := qc.service.GetSessionByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if session == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("session not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "QR session detail", session)
}

func (qc *QRSessionController) CreateSession(c *gin.Context) {
	var session models.QRSession
	if err := c.ShouldBindJSON(&session); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := qc.service.CreateSession(&session); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "QR session created", session)
}

// OpenSession resolves a table by the QR code token printed on it and opens
// an ordering session for that table.
func (qc *QRSessionController) OpenSession(c *gin.Context) {
	var req struct {
		QRCodeToken string `json:"qr_code_token" binding:"required,max=50"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session, err := qc.service.OpenSessionForTable(req.QRCodeToken)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if session == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "QR session opened", session)
}

func (qc *QRSessionController) UpdateSession(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("session_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid session id"))
		return
	}

	var patch models.QRSessionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session, err := qc.service.UpdateSession(uint(id), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if session == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("session not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "QR session updated", session)
}

// TouchSession stamps last_activity on an open session.
func (qc *QRSessionController) TouchSession(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("session_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid session id"))
		return
	}

	session, err := qc.service.TouchSession(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if session == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("session not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "QR session activity updated", session)
}
