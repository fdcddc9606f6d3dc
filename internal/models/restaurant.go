package models

// Restaurant represents a restaurant and its price list
type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `gorm:"not null" json:"address"`

	// RestaurantPizzas are owned by the restaurant: deleting it removes them
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// Pizzas returns the pizzas offered by the restaurant, derived from the
// loaded associations. It is a read-only view; appending to the result does
// not create associations.
func (r Restaurant) Pizzas() []Pizza {
	pizzas := make([]Pizza, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		if rp.Pizza.ID == 0 {
			continue
		}
		pizzas = append(pizzas, rp.Pizza)
	}
	return pizzas
}

// Validate checks the required fields of a restaurant
func (r Restaurant) Validate() error {
	if isBlank(r.Name) {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if isBlank(r.Address) {
		return &ValidationError{Field: "address", Message: "address is required"}
	}
	return nil
}
