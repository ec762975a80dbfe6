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

type IngredientController struct {
	service *services.IngredientService
}

func NewIngredientController(service *services.IngredientService) *IngredientController {
	return &IngredientController{service: service}
}

func (ic *IngredientController) GetAllIngredients(c *gin.Context) {
	ingredients, err := ic.service.GetAllIngredients()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of ingredients", ingredients)
}

func (ic *IngredientController) GetIngredientByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("ingredient_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid ingredient id"))
		return
	}

	ingredient, err := ic.service.GetIngredientByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if ingredient == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("ingredient not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Ingredient detail", ingredient)
}

func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	var ingredient models.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ic.service.CreateIngredient(&ingredient); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Ingredient created", ingredient)
}

func (ic *IngredientController) UpdateIngredient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("ingredient_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid ingredient id"))
		return
	}

	var patch models.IngredientPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ingredient, err := ic.service.UpdateIngredient(uint(id), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if ingredient == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("ingredient not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Ingredient updated", ingredient)
}

func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("ingredient_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid ingredient id"))
		return
	}

	deleted, err := ic.service.DeleteIngredient(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, errors.New("ingredient not found"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (ic *IngredientController) GetAllRecipes(c *gin.Context) {
	recipes, err := ic.service.GetAllRecipes()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of recipes", recipes)
}

func (ic *IngredientController) GetRecipeByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("recipe_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid recipe id"))
		return
	}

	recipe, err := ic.service.GetRecipeByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if recipe == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("recipe not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Recipe detail", recipe)
}

func (ic *IngredientController) CreateRecipe(c *gin.Context) {
	var recipe models.MenuItemRecipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ic.service.CreateRecipe(&recipe); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Recipe created", recipe)
}

func (ic *IngredientController) UpdateRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("recipe_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid recipe id"))
		return
	}

	var patch models.MenuItemRecipePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	recipe, err := ic.service.UpdateRecipe(uint(id), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if recipe == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("recipe not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Recipe updated", recipe)
}
