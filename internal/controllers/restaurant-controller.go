package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists restaurants without their pizzas
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant with its pizzas and prices
	GetRestaurantByID(c *gin.Context)
	// GetRestaurantPizzas lists the pizzas offered by a restaurant
	GetRestaurantPizzas(c *gin.Context)
	// CreateRestaurant creates a new restaurant
	CreateRestaurant(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its pizza associations
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get every restaurant with id, name and address only
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		log.WithError(err).Error("Failed to retrieve restaurants")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurants"))
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantSummaries(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with its restaurant_pizzas, each including its pizza
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "restaurant")
	if !ok {
		return
	}

	restaurant, ok := c.findRestaurant(ctx, id)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantDetail(restaurant))
}

// GetRestaurantPizzas godoc
// @Summary Get the pizzas of a restaurant
// @Description List the pizzas a restaurant offers, without prices
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {array} models.PizzaSummary
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id}/pizzas [get]
func (c *restaurantController) GetRestaurantPizzas(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "restaurant")
	if !ok {
		return
	}

	restaurant, ok := c.findRestaurant(ctx, id)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaSummaries(restaurant.Pizzas()))
}

// CreateRestaurant godoc
// @Summary Create a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param restaurant body models.CreateRestaurantRequest true "Restaurant name and address"
// @Success 201 {object} models.RestaurantSummary
// @Failure 400 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [post]
func (c *restaurantController) CreateRestaurant(ctx *gin.Context) {
	var req models.CreateRestaurantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(err))
		return
	}

	created, err := c.service.CreateRestaurant(req.Restaurant())
	if err != nil {
		log.WithError(err).Warn("Failed to create restaurant")
		respondWriteError(ctx, err, "Failed to create restaurant")
		return
	}
	ctx.JSON(http.StatusCreated, models.NewRestaurantSummary(created))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every restaurant_pizza referencing it
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "restaurant")
	if !ok {
		return
	}

	err := c.service.DeleteRestaurant(id)
	if errors.Is(err, models.ErrRestaurantNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse("Restaurant not found"))
		return
	}
	if err != nil {
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to delete restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to delete restaurant"))
		return
	}
	ctx.Status(http.StatusNoContent)
}

// findRestaurant loads a restaurant, answering 404 or 500 itself when it cannot
func (c *restaurantController) findRestaurant(ctx *gin.Context, id uint) (models.Restaurant, bool) {
	restaurant, err := c.service.GetRestaurantByID(id)
	if errors.Is(err, models.ErrRestaurantNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse("Restaurant not found"))
		return models.Restaurant{}, false
	}
	if err != nil {
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to retrieve restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurant"))
		return models.Restaurant{}, false
	}
	return restaurant, true
}
