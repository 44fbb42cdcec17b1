package ingredient

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("ingredient not found")
	ErrDuplicateName = errors.New("ingredient name already taken")
)

// Repository is the Ingredient Catalog store.
type Repository interface {
	Insert(ctx context.Context, ing *Ingredient) error
	FindByID(ctx context.Context, id string) (*Ingredient, error)
	FindByName(ctx context.Context, name string) (*Ingredient, error)
	List(ctx context.Context) ([]Ingredient, error)
	Update(ctx context.Context, ing *Ingredient) error
	Delete(ctx context.Context, id string) error
}
