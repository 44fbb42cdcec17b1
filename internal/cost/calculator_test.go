package cost

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profranchising/internal/apperr"
	"profranchising/internal/ingredient"
	"profranchising/internal/product"
)

type ledgerFixture struct {
	ingredients *ingredient.InMemoryRepository
	products    *product.InMemoryRepository
	ledger      *InMemoryRepository
	calculator  *Calculator
}

func newLedgerFixture(t *testing.T, catalog ...ingredient.Ingredient) ledgerFixture {
	t.Helper()

	f := ledgerFixture{
		ingredients: ingredient.NewInMemoryRepository(),
		products:    product.NewInMemoryRepository(),
		ledger:      NewInMemoryRepository(),
	}
	for i := range catalog {
		require.NoError(t, f.ingredients.Insert(context.Background(), &catalog[i]))
	}
	f.calculator = NewCalculator(f.products, ingredient.NewResolver(f.ingredients), f.ledger, nil)
	return f
}

func (f ledgerFixture) insertProduct(t *testing.T, p product.Product) string {
	t.Helper()
	require.NoError(t, f.products.Insert(context.Background(), &p))
	return p.ID
}

func TestComputeCoffeeCup(t *testing.T) {
	f := newLedgerFixture(t, ingredient.Ingredient{Name: "Coffee", Unity: ingredient.Kilogram, Price: 4})
	id := f.insertProduct(t, product.Product{
		Name:        "Coffee Cup",
		Price:       15,
		Quantity:    5,
		Ingredients: []ingredient.Ref{{Name: "Coffee", Quantity: 0.25}},
	})

	rec, err := f.calculator.Compute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Coffee Cup", rec.Name)
	assert.Equal(t, id, rec.ProductID)
	assert.InDelta(t, 1.0, rec.Cost, 1e-6)
}

func TestComputeSumsEveryReference(t *testing.T) {
	f := newLedgerFixture(t,
		ingredient.Ingredient{Name: "Bread", Unity: ingredient.Unit, Price: 0.35},
		ingredient.Ingredient{Name: "Cheese", Unity: ingredient.Kilogram, Price: 42.9},
		ingredient.Ingredient{Name: "Milk", Unity: ingredient.Liter, Price: 3.1},
	)
	id := f.insertProduct(t, product.Product{
		Name:     "Toast Combo",
		Price:    20,
		Quantity: 1,
		Ingredients: []ingredient.Ref{
			{Name: "Bread", Quantity: 2},
			{Name: "Cheese", Quantity: 0.03},
			{Name: "Milk", Quantity: 0.2},
		},
	})

	rec, err := f.calculator.Compute(context.Background(), id)
	require.NoError(t, err)
	assert.InDelta(t, 2*0.35+0.03*42.9+0.2*3.1, rec.Cost, 1e-6)
}

func TestComputeTwiceAppends(t *testing.T) {
	f := newLedgerFixture(t, ingredient.Ingredient{Name: "Coffee", Unity: ingredient.Kilogram, Price: 4})
	id := f.insertProduct(t, product.Product{
		Name:        "Coffee Cup",
		Price:       15,
		Quantity:    5,
		Ingredients: []ingredient.Ref{{Name: "Coffee", Quantity: 0.25}},
	})

	first, err := f.calculator.Compute(context.Background(), id)
	require.NoError(t, err)
	second, err := f.calculator.Compute(context.Background(), id)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.InDelta(t, first.Cost, second.Cost, 1e-12)

	records, err := f.ledger.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestComputeMissingIngredientWritesNothing(t *testing.T) {
	f := newLedgerFixture(t, ingredient.Ingredient{Name: "Coffee", Unity: ingredient.Kilogram, Price: 4})
	id := f.insertProduct(t, product.Product{
		Name:     "Latte",
		Price:    9,
		Quantity: 1,
		Ingredients: []ingredient.Ref{
			{Name: "Coffee", Quantity: 0.25},
			{Name: "Milk", Quantity: 0.2},
		},
	})

	_, err := f.calculator.Compute(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, "Ingredient with name Milk not found", apperr.PublicMessage(err))

	records, err := f.ledger.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestComputeMissingProduct(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.calculator.Compute(context.Background(), "0f8fad5b-d9cb-469f-a165-70867728950e")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Equal(t, "Product not found", apperr.PublicMessage(err))
}

func TestTotalEmptyRecipe(t *testing.T) {
	assert.Zero(t, Total(nil, nil))
}

func TestServiceListFiltersByName(t *testing.T) {
	f := newLedgerFixture(t, ingredient.Ingredient{Name: "Coffee", Unity: ingredient.Kilogram, Price: 4})
	cup := f.insertProduct(t, product.Product{
		Name: "Coffee Cup", Price: 15, Quantity: 5,
		Ingredients: []ingredient.Ref{{Name: "Coffee", Quantity: 0.25}},
	})
	mug := f.insertProduct(t, product.Product{
		Name: "Coffee Mug", Price: 18, Quantity: 1,
		Ingredients: []ingredient.Ref{{Name: "Coffee", Quantity: 0.5}},
	})
	service := NewService(f.ledger, f.calculator)

	_, err := service.Compute(context.Background(), cup)
	require.NoError(t, err)
	_, err = service.Compute(context.Background(), mug)
	require.NoError(t, err)

	all, err := service.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mugs, err := service.List(context.Background(), "Coffee Mug")
	require.NoError(t, err)
	require.Len(t, mugs, 1)
	assert.InDelta(t, 2.0, mugs[0].Cost, 1e-6)
}
