package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RestaurantPizzaInput is the loosely typed payload used to create a
// RestaurantPizza. JSON bodies must be decoded with UseNumber so numeric
// fields arrive as json.Number and integers can be told apart from floats.
type RestaurantPizzaInput struct {
	Price        any `json:"price" swaggertype:"integer"`
	PizzaID      any `json:"pizza_id" swaggertype:"integer"`
	RestaurantID any `json:"restaurant_id" swaggertype:"integer"`
}

// Build validates the input and returns the entity ready for persistence.
// Absent ids are left as zero; they are reported as integrity errors once
// the store is consulted.
func (in RestaurantPizzaInput) Build() (RestaurantPizza, error) {
	price, err := parseInteger("price", in.Price)
	if err != nil {
		return RestaurantPizza{}, err
	}
	if err := validatePriceRange(price); err != nil {
		return RestaurantPizza{}, err
	}

	pizzaID, err := parseID("pizza_id", in.PizzaID)
	if err != nil {
		return RestaurantPizza{}, err
	}
	restaurantID, err := parseID("restaurant_id", in.RestaurantID)
	if err != nil {
		return RestaurantPizza{}, err
	}

	return RestaurantPizza{
		Price:        int(price),
		PizzaID:      pizzaID,
		RestaurantID: restaurantID,
	}, nil
}

func validatePriceRange(price int64) error {
	if price < MinPrice || price > MaxPrice {
		return &ValidationError{
			Field:   "price",
			Message: fmt.Sprintf("price must be between %d and %d", MinPrice, MaxPrice),
		}
	}
	return nil
}

// parseInteger accepts json.Number integer tokens and every Go integer kind.
// Floats are rejected even when integral (10.0), as are numeric strings and booleans.
func parseInteger(field string, value any) (int64, error) {
	notInteger := &ValidationError{Field: field, Message: field + " must be an integer"}

	switch v := value.(type) {
	case json.Number:
		n, err := strconv.ParseInt(v.String(), 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ValidationError{Field: field, Message: field + " is out of range"}
		}
		if err != nil {
			return 0, notInteger
		}
		return n, nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return unsignedInteger(field, uint64(v))
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return unsignedInteger(field, v)
	default:
		return 0, notInteger
	}
}

func unsignedInteger(field string, v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, &ValidationError{Field: field, Message: field + " is out of range"}
	}
	return int64(v), nil
}

// parseID returns zero for an absent id so the integrity check reports it
func parseID(field string, value any) (uint, error) {
	if value == nil {
		return 0, nil
	}
	n, err := parseInteger(field, value)
	if err != nil {
		return 0, err
	}
	if n <= 0 || n > int64(^uint32(0)) {
		return 0, &ValidationError{Field: field, Message: field + " must be a positive integer"}
	}
	return uint(n), nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
