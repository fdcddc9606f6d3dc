package controllers

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the resource endpoints onto router
func RegisterRoutes(router gin.IRouter, restaurants RestaurantController, pizzas PizzaController, restaurantPizzas RestaurantPizzaController) {
	restaurantRoutes := router.Group("/restaurants")
	{
		restaurantRoutes.GET("", restaurants.GetAllRestaurants)
		restaurantRoutes.POST("", restaurants.CreateRestaurant)
		restaurantRoutes.GET("/:id", restaurants.GetRestaurantByID)
		restaurantRoutes.DELETE("/:id", restaurants.DeleteRestaurant)
		restaurantRoutes.GET("/:id/pizzas", restaurants.GetRestaurantPizzas)
	}

	pizzaRoutes := router.Group("/pizzas")
	{
		pizzaRoutes.GET("", pizzas.GetAllPizzas)
		pizzaRoutes.POST("", pizzas.CreatePizza)
		pizzaRoutes.GET("/:id", pizzas.GetPizzaByID)
		pizzaRoutes.DELETE("/:id", pizzas.DeletePizza)
	}

	router.POST("/restaurant_pizzas", restaurantPizzas.CreateRestaurantPizza)
}
