package router

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"profranchising/internal/auth"
	"profranchising/internal/cost"
	"profranchising/internal/ingredient"
	"profranchising/internal/product"
)

// Stores groups one repository per collection.
type Stores struct {
	Users       auth.UserRepository
	Logins      auth.LoginRepository
	Ingredients ingredient.Repository
	Products    product.Repository
	Costs       cost.Repository
}

func MemoryStores() Stores {
	return Stores{
		Users:       auth.NewInMemoryUserRepository(),
		Logins:      auth.NewInMemoryLoginRepository(),
		Ingredients: ingredient.NewInMemoryRepository(),
		Products:    product.NewInMemoryRepository(),
		Costs:       cost.NewInMemoryRepository(),
	}
}

func PostgresStores(pool *pgxpool.Pool) Stores {
	return Stores{
		Users:       auth.NewPostgresUserRepository(pool),
		Logins:      auth.NewPostgresLoginRepository(pool),
		Ingredients: ingredient.NewPostgresRepository(pool),
		Products:    product.NewPostgresRepository(pool),
		Costs:       cost.NewPostgresRepository(pool),
	}
}
