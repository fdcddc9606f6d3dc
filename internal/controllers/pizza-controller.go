package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type controller struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &controller{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas with id, name and ingredients only
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas()
	if err != nil {
		log.WithError(err).Error("Failed to retrieve pizzas")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve pizzas"))
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaSummaries(pizzas))
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza with the restaurants offering it
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.PizzaDetail
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /pizzas/{id} [get]
func (c *controller) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "pizza")
	if !ok {
		return
	}

	pizza, err := c.service.GetPizzaByID(id)
	if errors.Is(err, models.ErrPizzaNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse("Pizza not found"))
		return
	}
	if err != nil {
		log.WithError(err).WithField("pizza_id", id).Error("Failed to retrieve pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve pizza"))
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaDetail(pizza))
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body models.CreatePizzaRequest true "Pizza name and ingredients"
// @Success 201 {object} models.PizzaSummary
// @Failure 400 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [post]
func (c *controller) CreatePizza(ctx *gin.Context) {
	var req models.CreatePizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(err))
		return
	}

	created, err := c.service.CreatePizza(req.Pizza())
	if err != nil {
		log.WithError(err).Warn("Failed to create pizza")
		respondWriteError(ctx, err, "Failed to create pizza")
		return
	}
	ctx.JSON(http.StatusCreated, models.NewPizzaSummary(created))
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza and every restaurant_pizza referencing it
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas/{id} [delete]
func (c *controller) DeletePizza(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "pizza")
	if !ok {
		return
	}

	err := c.service.DeletePizza(id)
	if errors.Is(err, models.ErrPizzaNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse("Pizza not found"))
		return
	}
	if err != nil {
		log.WithError(err).WithField("pizza_id", id).Error("Failed to delete pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to delete pizza"))
		return
	}
	ctx.Status(http.StatusNoContent)
}
