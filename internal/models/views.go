package models

// The types below are the response projections. Each one declares exactly
// which fields and relations it carries, so nested values never point back
// at their parent and the JSON output is always finite.

// RestaurantSummary is the restricted restaurant projection used by list views
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaSummary is the restricted pizza projection used by list views and nesting
type PizzaSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaDetail is an association seen from its restaurant: the
// restaurant back-reference is omitted and the pizza carries no associations.
type RestaurantPizzaDetail struct {
	ID           uint         `json:"id"`
	Price        int          `json:"price"`
	PizzaID      uint         `json:"pizza_id"`
	RestaurantID uint         `json:"restaurant_id"`
	Pizza        PizzaSummary `json:"pizza"`
}

// RestaurantDetail is the full restaurant projection
type RestaurantDetail struct {
	ID               uint                    `json:"id"`
	Name             string                  `json:"name"`
	Address          string                  `json:"address"`
	RestaurantPizzas []RestaurantPizzaDetail `json:"restaurant_pizzas"`
}

// RestaurantPizzaCreated is the flat body returned after creating an association
type RestaurantPizzaCreated struct {
	ID           uint              `json:"id"`
	Price        int               `json:"price"`
	PizzaID      uint              `json:"pizza_id"`
	RestaurantID uint              `json:"restaurant_id"`
	Pizza        PizzaSummary      `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

// PizzaDetail is a pizza with the restaurants offering it
type PizzaDetail struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	Ingredients string              `json:"ingredients"`
	Restaurants []RestaurantSummary `json:"restaurants"`
}

func NewRestaurantSummary(r Restaurant) RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

func NewPizzaSummary(p Pizza) PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// NewRestaurantSummaries projects a list of restaurants; the result is never nil
func NewRestaurantSummaries(restaurants []Restaurant) []RestaurantSummary {
	summaries := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		summaries = append(summaries, NewRestaurantSummary(r))
	}
	return summaries
}

// NewPizzaSummaries projects a list of pizzas; the result is never nil
func NewPizzaSummaries(pizzas []Pizza) []PizzaSummary {
	summaries := make([]PizzaSummary, 0, len(pizzas))
	for _, p := range pizzas {
		summaries = append(summaries, NewPizzaSummary(p))
	}
	return summaries
}

func NewRestaurantPizzaDetail(rp RestaurantPizza) RestaurantPizzaDetail {
	return RestaurantPizzaDetail{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        NewPizzaSummary(rp.Pizza),
	}
}

// NewRestaurantDetail expects RestaurantPizzas and their Pizza to be loaded
func NewRestaurantDetail(r Restaurant) RestaurantDetail {
	details := make([]RestaurantPizzaDetail, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		details = append(details, NewRestaurantPizzaDetail(rp))
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: details,
	}
}

// NewRestaurantPizzaCreated expects Pizza and Restaurant to be loaded
func NewRestaurantPizzaCreated(rp RestaurantPizza) RestaurantPizzaCreated {
	return RestaurantPizzaCreated{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        NewPizzaSummary(rp.Pizza),
		Restaurant:   NewRestaurantSummary(rp.Restaurant),
	}
}

// NewPizzaDetail expects RestaurantPizzas and their Restaurant to be loaded
func NewPizzaDetail(p Pizza) PizzaDetail {
	return PizzaDetail{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
		Restaurants: NewRestaurantSummaries(p.Restaurants()),
	}
}
