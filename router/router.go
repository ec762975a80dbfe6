package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Brianlih/orderflow-be/controllers"
	"github.com/Brianlih/orderflow-be/middlewares"
	"github.com/Brianlih/orderflow-be/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	restaurantCtrl := controllers.NewRestaurantController(services.NewRestaurantService(db))
	tableCtrl := controllers.NewTableController(services.NewTableService(db))
	categoryCtrl := controllers.NewCategoryController(services.NewCategoryService(db))
	allergenCtrl := controllers.NewAllergenController(services.NewAllergenService(db))
	menuItemCtrl := controllers.NewMenuItemController(services.NewMenuItemService(db))
	customizationCtrl := controllers.NewCustomizationController(services.NewCustomizationService(db))
	ingredientCtrl := controllers.NewIngredientController(services.NewIngredientService(db))
	inventoryCtrl := controllers.NewInventoryController(services.NewInventoryService(db))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(db))
	qrSessionCtrl := controllers.NewQRSessionController(services.NewQRSessionService(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", restaurantCtrl.GetAllRestaurants)
		restaurants.GET("/:restaurant_id", restaurantCtrl.GetRestaurantByID)
		restaurants.POST("", restaurantCtrl.CreateRestaurant)
		restaurants.PUT("/:restaurant_id", restaurantCtrl.UpdateRestaurant)
		restaurants.DELETE("/:restaurant_id", restaurantCtrl.DeleteRestaurant)
		restaurants.GET("/:restaurant_id/allergens", restaurantCtrl.GetRestaurantAllergens)
		restaurants.GET("/:restaurant_id/menu", restaurantCtrl.GetRestaurantMenu)
	}

	tables := r.Group("/tables")
	{
		tables.GET("", tableCtrl.GetAllTables)
		tables.GET("/:table_id", tableCtrl.GetTableByID)
		tables.POST("", tableCtrl.CreateTable)
		tables.PUT("/:table_id", tableCtrl.UpdateTable)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", categoryCtrl.GetAllCategories)
		categories.GET("/:category_id", categoryCtrl.GetCategoryByID)
		categories.POST("", categoryCtrl.CreateCategory)
		categories.PUT("/:category_id", categoryCtrl.UpdateCategory)
		categories.DELETE("/:category_id", categoryCtrl.DeleteCategory)
	}

	allergens := r.Group("/allergens")
	{
		allergens.GET("", allergenCtrl.GetAllAllergens)
		allergens.GET("/:allergen_id", allergenCtrl.GetAllergenByID)
		allergens.POST("", allergenCtrl.CreateAllergen)
		allergens.PUT("/:allergen_id", allergenCtrl.UpdateAllergen)
	}

	menuItems := r.Group("/menu-items")
	{
		menuItems.GET("", menuItemCtrl.GetAllMenuItems)
		menuItems.GET("/:item_id", menuItemCtrl.GetMenuItemByID)
		menuItems.POST("", menuItemCtrl.CreateMenuItem)
		menuItems.PUT("/:item_id", menuItemCtrl.UpdateMenuItem)
		menuItems.DELETE("/:item_id", menuItemCtrl.DeleteMenuItem)
		menuItems.POST("/:item_id/allergens", menuItemCtrl.TagAllergen)
		menuItems.GET("/:item_id/allergens/:allergen_id", menuItemCtrl.GetAllergenTag)
		menuItems.PUT("/:item_id/allergens/:allergen_id", menuItemCtrl.UpdateAllergenTag)
	}

	allergenTags := r.Group("/menu-item-allergens")
	{
		allergenTags.GET("", menuItemCtrl.GetAllAllergenTags)
	}

	options := r.Group("/customization-options")
	{
		options.GET("", customizationCtrl.GetAllOptions)
		options.GET("/:option_id", customizationCtrl.GetOptionByID)
		options.POST("", customizationCtrl.CreateOption)
		options.PUT("/:option_id", customizationCtrl.UpdateOption)
		options.DELETE("/:option_id", customizationCtrl.DeleteOption)
	}

	choices := r.Group("/customization-choices")
	{
		choices.GET("", customizationCtrl.GetAllChoices)
		choices.GET("/:choice_id", customizationCtrl.GetChoiceByID)
		choices.POST("", customizationCtrl.CreateChoice)
		choices.PUT("/:choice_id", customizationCtrl.UpdateChoice)
	}

	ingredients := r.Group("/ingredients")
	{
		ingredients.GET("", ingredientCtrl.GetAllIngredients)
		ingredients.GET("/:ingredient_id", ingredientCtrl.GetIngredientByID)
		ingredients.POST("", ingredientCtrl.CreateIngredient)
		ingredients.PUT("/:ingredient_id", ingredientCtrl.UpdateIngredient)
		ingredients.DELETE("/:ingredient_id", ingredientCtrl.DeleteIngredient)
	}

	recipes := r.Group("/recipes")
	{
		recipes.GET("", ingredientCtrl.GetAllRecipes)
		recipes.GET("/:recipe_id", ingredientCtrl.GetRecipeByID)
		recipes.POST("", ingredientCtrl.CreateRecipe)
		recipes.PUT("/:recipe_id", ingredientCtrl.UpdateRecipe)
	}

	inventory := r.Group("/inventory-transactions")
	{
		inventory.GET("", inventoryCtrl.GetAllTransactions)
		inventory.GET("/:transaction_id", inventoryCtrl.GetTransactionByID)
		inventory.POST("", inventoryCtrl.CreateTransaction)
		inventory.PUT("/:transaction_id", inventoryCtrl.UpdateTransaction)
	}

	orders := r.Group("/orders")
	{
		orders.GET("", orderCtrl.GetAllOrders)
		orders.GET("/:order_id", orderCtrl.GetOrderByID)
		orders.POST("", orderCtrl.CreateOrder)
		orders.PUT("/:order_id", orderCtrl.UpdateOrder)
	}

	orderItems := r.Group("/order-items")
	{
		orderItems.GET("", orderCtrl.GetAllOrderItems)
		orderItems.GET("/:order_item_id", orderCtrl.GetOrderItemByID)
		orderItems.POST("", orderCtrl.CreateOrderItem)
		orderItems.PUT("/:order_item_id", orderCtrl.UpdateOrderItem)
	}

	orderCustomizations := r.Group("/order-customizations")
	{
		orderCustomizations.GET("/:customization_id", orderCtrl.GetOrderCustomizationByID)
		orderCustomizations.POST("", orderCtrl.CreateOrderCustomization)
		orderCustomizations.PUT("/:customization_id", orderCtrl.UpdateOrderCustomization)
	}

	qrSessions := r.Group("/qr-sessions")
	{
		qrSessions.GET("", qrSessionCtrl.GetAllSessions)
		qrSessions.GET("/:session_id", qrSessionCtrl.GetSessionByID)
		qrSessions.POST("", qrSessionCtrl.CreateSession)
		qrSessions.POST("/open", middlewares.NewStrictRateLimiter(), qrSessionCtrl.OpenSession)
		qrSessions.PUT("/:session_id", qrSessionCtrl.UpdateSession)
		qrSessions.PATCH("/:session_id/touch", qrSessionCtrl.TouchSession)
	}

	return r
}
