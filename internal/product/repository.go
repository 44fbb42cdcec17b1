package product

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product not found")

// Repository is the Product Catalog store.
type Repository interface {
	Insert(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, p *Product) error
	SetImage(ctx context.Context, id, image string) error
	Delete(ctx context.Context, id string) error

	// CountReferencing counts products whose recipe names the ingredient.
	CountReferencing(ctx context.Context, ingredientName string) (int, error)
}
