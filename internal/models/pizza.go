package models

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Ingredients string `gorm:"not null" json:"ingredients"`

	// RestaurantPizzas are the price associations of this pizza.
	// Deleting a pizza removes them.
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// Restaurants returns the restaurants offering this pizza, derived from the
// loaded associations. Associations without a loaded restaurant are skipped.
func (p Pizza) Restaurants() []Restaurant {
	restaurants := make([]Restaurant, 0, len(p.RestaurantPizzas))
	for _, rp := range p.RestaurantPizzas {
		if rp.Restaurant.ID == 0 {
			continue
		}
		restaurants = append(restaurants, rp.Restaurant)
	}
	return restaurants
}

// Validate checks the required fields of a pizza
func (p Pizza) Validate() error {
	if isBlank(p.Name) {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if isBlank(p.Ingredients) {
		return &ValidationError{Field: "ingredients", Message: "ingredients is required"}
	}
	return nil
}
