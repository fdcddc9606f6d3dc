package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their associations
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its pizza associations loaded
	GetRestaurantByID(id uint) (models.Restaurant, error)
	// CreateRestaurant validates and creates a new restaurant
	CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and all of its pizza associations
	DeleteRestaurant(id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("RestaurantPizzas", orderByID).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Restaurant{}, models.ErrRestaurantNotFound
	}
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return restaurant, nil
}

func (s *restaurantService) CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error) {
	if err := restaurant.Validate(); err != nil {
		return models.Restaurant{}, err
	}
	restaurant.ID = 0
	restaurant.RestaurantPizzas = nil
	if err := s.db.Create(&restaurant).Error; err != nil {
		return models.Restaurant{}, translateWriteError(err)
	}
	return restaurant, nil
}

// DeleteRestaurant checks the restaurant exists before deleting, then removes
// its associations and the restaurant in one transaction. The foreign key
// cascade covers rows added concurrently.
func (s *restaurantService) DeleteRestaurant(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.Select("id").First(&restaurant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrRestaurantNotFound
			}
			return fmt.Errorf("find restaurant %d: %w", id, err)
		}
		if err := tx.Select("RestaurantPizzas").Delete(&restaurant).Error; err != nil {
			return fmt.Errorf("delete restaurant %d: %w", id, err)
		}
		return nil
	})
}
