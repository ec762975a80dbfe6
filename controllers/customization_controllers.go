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

type CustomizationController struct {
	service *services.CustomizationService
}

func NewCustomizationController(service *services.CustomizationService) *CustomizationController {
	return &CustomizationController{service: service}
}

func (cc *CustomizationController) GetAllOptions(c *gin.Context) {
	options, err := cc.service.GetAllOptions()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customization options", options)
}

func (cc *CustomizationController) GetOptionByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("option_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid option id"))
		return
	}

	option, err := cc.service.GetOptionByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if option == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customization option not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customization option detail", option)
}

func (cc *CustomizationController) CreateOption(c *gin.Context) {
	var option models.CustomizationOption
	if err := c.ShouldBindJSON(&option); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.service.CreateOption(&option); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Customization option created", option)
}

func (cc *CustomizationController) UpdateOption(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("option_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid option id"))
		return
	}

	var patch models.CustomizationOptionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	option, err := cc.service.UpdateOption(uint(id), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if option == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customization option not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customization option updated", option)
}

func (cc *CustomizationController) DeleteOption(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("option_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid option id"))
		return
	}

	deleted, err := cc.service.DeleteOption(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, errors.New("customization option not found"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (cc *CustomizationController) GetAllChoices(c *gin.Context) {
	choices, err := cc.service.GetAllChoices()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customization choices", choices)
}

func (cc *CustomizationController) GetChoiceByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("choice_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid choice id"))
		return
	}

	choice, err := cc.service.GetChoiceByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if choice == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customization choice not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customization choice detail", choice)
}

func (cc *CustomizationController) CreateChoice(c *gin.Context) {
	var choice models.CustomizationChoice
	if err := c.ShouldBindJSON(&choice); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.service.CreateChoice(&choice); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Customization choice created", choice)
}

func (cc *CustomizationController) UpdateChoice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("choice_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid choice id"))
		return
	}

	var patch models.CustomizationChoicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	choice, err := cc.service.UpdateChoice(uint(id), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if choice == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customization choice not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customization choice updated", choice)
}
