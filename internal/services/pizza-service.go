package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas from the database
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza with its restaurant associations loaded
	GetPizzaByID(id uint) (models.Pizza, error)
	// CreatePizza validates and creates a new pizza in the database
	CreatePizza(pizza models.Pizza) (models.Pizza, error)
	// DeletePizza deletes a pizza and its restaurant associations
	DeletePizza(id uint) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id uint) (models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.
		Preload("RestaurantPizzas", orderByID).
		Preload("RestaurantPizzas.Restaurant").
		First(&pizza, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Pizza{}, models.ErrPizzaNotFound
	}
	if err != nil {
		return models.Pizza{}, fmt.Errorf("get pizza %d: %w", id, err)
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(pizza models.Pizza) (models.Pizza, error) {
	if err := pizza.Validate(); err != nil {
		return models.Pizza{}, err
	}
	pizza.ID = 0
	pizza.RestaurantPizzas = nil
	if err := s.db.Create(&pizza).Error; err != nil {
		return models.Pizza{}, translateWriteError(err)
	}
	return pizza, nil
}

func (s *pizzaService) DeletePizza(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.Select("id").First(&pizza, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrPizzaNotFound
			}
			return fmt.Errorf("find pizza %d: %w", id, err)
		}
		if err := tx.Select("RestaurantPizzas").Delete(&pizza).Error; err != nil {
			return fmt.Errorf("delete pizza %d: %w", id, err)
		}
		return nil
	})
}
