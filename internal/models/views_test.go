package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRestaurant() Restaurant {
	pizza := Pizza{ID: 2, Name: "Margherita", Ingredients: "Cheese"}
	restaurant := Restaurant{ID: 1, Name: "A", Address: "X"}
	rp := RestaurantPizza{ID: 3, Price: 15, RestaurantID: 1, PizzaID: 2, Pizza: pizza, Restaurant: restaurant}
	// link both sides the way a preloaded graph is linked
	pizza.RestaurantPizzas = []RestaurantPizza{rp}
	rp.Pizza = pizza
	restaurant.RestaurantPizzas = []RestaurantPizza{rp}
	return restaurant
}

func TestRestaurantDetailHasNoBackReferences(t *testing.T) {
	body, err := json.Marshal(NewRestaurantDetail(sampleRestaurant()))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "A", decoded["name"])
	rps := decoded["restaurant_pizzas"].([]any)
	require.Len(t, rps, 1)

	rp := rps[0].(map[string]any)
	assert.NotContains(t, rp, "restaurant")
	assert.EqualValues(t, 15, rp["price"])

	pizza := rp["pizza"].(map[string]any)
	assert.NotContains(t, pizza, "restaurant_pizzas")
	assert.NotContains(t, pizza, "restaurants")
	assert.Equal(t, "Margherita", pizza["name"])
}

func TestRestaurantDetailWithoutAssociationsEncodesEmptyList(t *testing.T) {
	body, err := json.Marshal(NewRestaurantDetail(Restaurant{ID: 9, Name: "B", Address: "Y"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9,"name":"B","address":"Y","restaurant_pizzas":[]}`, string(body))
}

func TestSummariesOmitRelationships(t *testing.T) {
	restaurants, err := json.Marshal(NewRestaurantSummaries([]Restaurant{sampleRestaurant()}))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"A","address":"X"}]`, string(restaurants))

	pizzas, err := json.Marshal(NewPizzaSummaries(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(pizzas))
}

func TestRestaurantPizzaCreatedShape(t *testing.T) {
	rp := sampleRestaurant().RestaurantPizzas[0]
	rp.Restaurant = Restaurant{ID: 1, Name: "A", Address: "X"}

	body, err := json.Marshal(NewRestaurantPizzaCreated(rp))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 3,
		"price": 15,
		"pizza_id": 2,
		"restaurant_id": 1,
		"pizza": {"id": 2, "name": "Margherita", "ingredients": "Cheese"},
		"restaurant": {"id": 1, "name": "A", "address": "X"}
	}`, string(body))
}

func TestDerivedViews(t *testing.T) {
	restaurant := sampleRestaurant()
	pizzas := restaurant.Pizzas()
	require.Len(t, pizzas, 1)
	assert.Equal(t, "Margherita", pizzas[0].Name)

	pizza := Pizza{
		ID:   2,
		Name: "Margherita",
		RestaurantPizzas: []RestaurantPizza{
			{ID: 3, Restaurant: Restaurant{ID: 1, Name: "A", Address: "X"}},
			{ID: 4}, // restaurant not loaded
		},
	}
	restaurants := pizza.Restaurants()
	require.Len(t, restaurants, 1)
	assert.Equal(t, uint(1), restaurants[0].ID)

	detail := NewPizzaDetail(pizza)
	assert.Equal(t, []RestaurantSummary{{ID: 1, Name: "A", Address: "X"}}, detail.Restaurants)
}
