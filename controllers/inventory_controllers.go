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

type InventoryController struct {
	service *services.InventoryService
}

func NewInventoryController(service *services.InventoryService) *InventoryController {
	return &InventoryController{service: service}
}

func (ic *InventoryController) GetAllTransactions(c *gin.Context) {
	transactions, err := ic.service.GetAllTransactions()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of inventory transactions", transactions)
}

func (ic *InventoryController) GetTransactionByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("transaction_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid transaction id"))
		return
	}

	transaction, err := ic.service.GetTransactionByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if transaction == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory transaction not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory transaction detail", transaction)
}

func (ic *InventoryController) CreateTransaction(c *gin.Context) {
	var transaction models.InventoryTransaction
	if err := c.ShouldBindJSON(&transaction); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ic.service.CreateTransaction(&transaction); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Inventory transaction created", transaction)
}

func (ic *InventoryController) UpdateTransaction(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("transaction_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid transaction id"))
		return
	}

	var patch models.InventoryTransactionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	transaction, err := ic.service.UpdateTransaction(uint(id), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if transaction == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("inventory transaction not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory transaction updated", transaction)
}
