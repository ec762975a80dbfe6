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

type MenuItemController struct {
	service *services.MenuItemService
}

func NewMenuItemController(service *services.MenuItemService) *MenuItemController {
	return &MenuItemController{service: service}
}

func (mc *MenuItemController) GetAllMenuItems(c *gin.Context) {
	items, err := mc.service.GetAllMenuItems()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

func (mc *MenuItemController) GetMenuItemByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	item, err := mc.service.GetMenuItemByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.service.CreateMenuItem(&item); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	var patch models.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.service.UpdateMenuItem(uint(id), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	deleted, err := mc.service.DeleteMenuItem(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (mc *MenuItemController) GetAllAllergenTags(c *gin.Context) {
	links, err := mc.service.GetAllAllergenLinks()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of allergen tags", links)
}

func (mc *MenuItemController) GetAllergenTag(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}
	allergenID, err := strconv.ParseUint(c.Param("allergen_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid allergen id"))
		return
	}

	link, err := mc.service.GetAllergenLink(uint(itemID), uint(allergenID))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if link == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("allergen tag not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Allergen tag detail", link)
}

// TagAllergen attaches an allergen to a menu item with its contamination risk.
func (mc *MenuItemController) TagAllergen(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	var link models.MenuItemAllergen
	if err := c.ShouldBindJSON(&link); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	link.MenuItemID = uint(itemID)

	if err := mc.service.TagAllergen(&link); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Allergen tagged", link)
}

func (mc *MenuItemController) UpdateAllergenTag(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}
	allergenID, err := strconv.ParseUint(c.Param("allergen_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid allergen id"))
		return
	}

	var patch models.MenuItemAllergenPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	link, err := mc.service.UpdateAllergenLink(uint(itemID), uint(allergenID), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if link == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("allergen tag not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Allergen tag updated", link)
}
