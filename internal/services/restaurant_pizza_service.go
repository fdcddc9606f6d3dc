package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService manages the price associations between restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates a raw payload and persists the association
	CreateRestaurantPizza(input models.RestaurantPizzaInput) (models.RestaurantPizza, error)
	// Create validates and persists an association. The returned value has
	// its Pizza and Restaurant loaded.
	Create(rp models.RestaurantPizza) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(input models.RestaurantPizzaInput) (models.RestaurantPizza, error) {
	rp, err := input.Build()
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return s.Create(rp)
}

// Create runs in a single transaction; any error rolls every write back
func (s *restaurantPizzaService) Create(rp models.RestaurantPizza) (models.RestaurantPizza, error) {
	if err := rp.Validate(); err != nil {
		return models.RestaurantPizza{}, err
	}

	var created models.RestaurantPizza
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Pizza{}, "pizza_id", rp.PizzaID); err != nil {
			return err
		}
		if err := requireRow(tx, &models.Restaurant{}, "restaurant_id", rp.RestaurantID); err != nil {
			return err
		}

		row := models.RestaurantPizza{
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
		}
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return translateWriteError(err)
		}

		return tx.Preload("Pizza").Preload("Restaurant").First(&created, row.ID).Error
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return created, nil
}

// requireRow returns an IntegrityError when no row of model has the given id
func requireRow(tx *gorm.DB, model any, field string, id uint) error {
	if id == 0 {
		return &models.IntegrityError{Field: field}
	}
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check %s %d: %w", field, id, err)
	}
	if count == 0 {
		return &models.IntegrityError{Field: field, ID: id}
	}
	return nil
}

// translateWriteError maps store constraint violations onto the model error types
func translateWriteError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &models.IntegrityError{Field: "foreign key", Err: err}
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return &models.ValidationError{Field: "price", Message: err.Error()}
	default:
		return err
	}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
