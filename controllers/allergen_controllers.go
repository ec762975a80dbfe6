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

type AllergenController struct {
	service *services.AllergenService
}

func NewAllergenController(service *services.AllergenService) *AllergenController {
	return &AllergenController{service: service}
}

func (ac *AllergenController) GetAllAllergens(c *gin.Context) {
	allergens, err := ac.service.GetAllAllergens()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of allergens", allergens)
}

func (ac *AllergenController) GetAllergenByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("allergen_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid allergen id"))
		return
	}

	allergen, err := ac.service.GetAllergenByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if allergen == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("allergen not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Allergen detail", allergen)
}

func (ac *AllergenController) CreateAllergen(c *gin.Context) {
	var allergen models.Allergen
	if err := c.ShouldBindJSON(&allergen); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ac.service.CreateAllergen(&allergen); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Allergen created", allergen)
}

func (ac *AllergenController) UpdateAllergen(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("allergen_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid allergen id"))
		return
	}

	var patch models.AllergenPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	allergen, err := ac.service.UpdateAllergen(uint(id), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if allergen == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("allergen not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Allergen updated", allergen)
}
