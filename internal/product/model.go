package product

import (
	"time"

	"profranchising/internal/ingredient"
)

// Product is a sellable item and the recipe it is made from.
type Product struct {
	ID          string           `json:"_id"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	Quantity    int              `json:"quantity"`
	Ingredients []ingredient.Ref `json:"ingredients"`
	Image       string           `json:"image,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type Input struct {
	Name        string           `json:"name" validate:"notblank,max=255"`
	Price       float64          `json:"price" validate:"gte=0.01"`
	Quantity    int              `json:"quantity" validate:"min=1,max=2147483647"`
	Ingredients []ingredient.Ref `json:"ingredients" validate:"min=1,dive"`
}
