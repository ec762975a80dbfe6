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

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.service.GetAllOrders()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := oc.service.GetOrderByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if order == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.service.CreateOrder(&order); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var patch models.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.service.UpdateOrder(uint(id), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if order == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

func (oc *OrderController) GetAllOrderItems(c *gin.Context) {
	items, err := oc.service.GetAllOrderItems()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of order items", items)
}

func (oc *OrderController) GetOrderItemByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order item id"))
		return
	}

	item, err := oc.service.GetOrderItemByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item detail", item)
}

func (oc *OrderController) CreateOrderItem(c *gin.Context) {
	var item models.OrderItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.service.CreateOrderItem(&item); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order item created", item)
}

func (oc *OrderController) UpdateOrderItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order item id"))
		return
	}

	var patch models.OrderItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := oc.service.UpdateOrderItem(uint(id), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item updated", item)
}

// CreateOrderCustomization snapshots an option/choice pairing for an order item.
func (oc *OrderController) CreateOrderCustomization(c *gin.Context) {
	var customization models.OrderCustomization
	if err := c.ShouldBindJSON(&customization); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.service.CreateOrderCustomization(&customization); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order customization created", customization)
}

func (oc *OrderController) GetOrderCustomizationByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("customization_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid customization id"))
		return
	}

	customization, err := oc.service.GetOrderCustomizationByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if customization == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order customization not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order customization detail", customization)
}

func (oc *OrderController) UpdateOrderCustomization(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("customization_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid customization id"))
		return
	}

	var patch models.OrderCustomizationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customization, err := oc.service.UpdateOrderCustomization(uint(id), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if customization == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order customization not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order customization updated", customization)
}
