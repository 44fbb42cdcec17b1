package ingredient

import "time"

// Unity is the unit an ingredient's price refers to.
type Unity string

const (
	Kilogram Unity = "kg"
	Liter    Unity = "l"
	Unit     Unity = "un"
)

type Ingredient struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Unity     Unity     `json:"unity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input is the validated create/edit payload.
type Input struct {
	Name  string  `json:"name" validate:"notblank,max=255"`
	Unity Unity   `json:"unity" validate:"notblank,unity"`
	Price float64 `json:"price" validate:"gte=0.01"`
}

// Ref points at an ingredient by name from a product's recipe.
type Ref struct {
	Name     string  `json:"name" validate:"notblank,max=255"`
	Quantity float64 `json:"quantity" validate:"gte=0.01"`
}
