package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza offers a pizza at a restaurant for a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer a pizza at a restaurant. Price must be a whole number between 1 and 30.
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.RestaurantPizzaInput true "price, pizza_id and restaurant_id"
// @Success 201 {object} models.RestaurantPizzaCreated
// @Failure 400 {object} models.ErrorsResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	// numbers must stay json.Number so 10 and 10.0 can be told apart
	var input models.RestaurantPizzaInput
	decoder := json.NewDecoder(ctx.Request.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(fmt.Errorf("invalid request body: %w", err)))
		return
	}

	// every failure here has been rolled back and is answered with the errors list
	created, err := c.service.CreateRestaurantPizza(input)
	if err != nil {
		entry := log.WithError(err).WithFields(log.Fields{
			"pizza_id":      input.PizzaID,
			"restaurant_id": input.RestaurantID,
		})
		if models.IsWriteError(err) {
			entry.Warn("Rejected restaurant pizza")
		} else {
			entry.Error("Failed to create restaurant pizza")
		}
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(err))
		return
	}
	ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaCreated(created))
}
