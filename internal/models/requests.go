package models

// CreateRestaurantRequest is the body accepted by POST /restaurants
type CreateRestaurantRequest struct {
	Name    string `json:"name" example:"Kiki's Pizza"`
	Address string `json:"address" example:"address3"`
}

// Restaurant returns the entity to persist; the id is always assigned by the store
func (r CreateRestaurantRequest) Restaurant() Restaurant {
	return Restaurant{Name: r.Name, Address: r.Address}
}

// CreatePizzaRequest is the body accepted by POST /pizzas
type CreatePizzaRequest struct {
	Name        string `json:"name" example:"Emma"`
	Ingredients string `json:"ingredients" example:"Dough, Tomato Sauce, Cheese"`
}

// Pizza returns the entity to persist
func (r CreatePizzaRequest) Pizza() Pizza {
	return Pizza{Name: r.Name, Ingredients: r.Ingredients}
}
