package models

const (
	// MinPrice is the lowest price a restaurant may charge for a pizza
	MinPrice = 1
	// MaxPrice is the highest price a restaurant may charge for a pizza
	MaxPrice = 30
)

// RestaurantPizza is the association between a restaurant and a pizza it
// offers, carrying the price.
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	Price        int  `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30" json:"price"`
	RestaurantID uint `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      uint `gorm:"not null;index" json:"pizza_id"`

	Restaurant Restaurant `json:"-"`
	Pizza      Pizza      `json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// Validate checks the price bounds. Foreign keys are checked by the
// persistence layer since they need the store.
func (rp RestaurantPizza) Validate() error {
	return validatePriceRange(int64(rp.Price))
}
