package ingredient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profranchising/internal/apperr"
)

type fixedCounter int

func (f fixedCounter) CountReferencing(context.Context, string) (int, error) {
	return int(f), nil
}

func TestCreateAndGet(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil, nil)

	ing, err := service.Create(context.Background(), Input{Name: "Coffee", Unity: Kilogram, Price: 4})
	require.NoError(t, err)
	assert.NotEmpty(t, ing.ID)

	got, err := service.Get(context.Background(), ing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", got.Name)
	assert.Equal(t, Kilogram, got.Unity)
	assert.InDelta(t, 4.0, got.Price, 1e-9)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil, nil)

	_, err := service.Create(context.Background(), Input{Name: "Coffee", Unity: Kilogram, Price: 4})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), Input{Name: "Coffee", Unity: Unit, Price: 1})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestGetMissing(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil, nil)

	_, err := service.Get(context.Background(), "0f8fad5b-d9cb-469f-a165-70867728950e")
	require.Error(t, err)
	assert.Equal(t, "Ingredient not found", apperr.PublicMessage(err))
}

func TestUpdate(t *testing.T) {
	service := NewService(NewInMemoryRepository(), fixedCounter(2), nil)
	ing, err := service.Create(context.Background(), Input{Name: "Coffee", Unity: Kilogram, Price: 4})
	require.NoError(t, err)

	msg, err := service.Update(context.Background(), ing.ID, Input{Name: "Coffee", Unity: Kilogram, Price: 5})
	require.NoError(t, err)
	assert.Equal(t, "Ingredient with id:"+ing.ID+" edited ", msg)

	got, err := service.Get(context.Background(), ing.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got.Price, 1e-9)
}

func TestUpdateKeepsNamesUnique(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil, nil)
	_, err := service.Create(context.Background(), Input{Name: "Coffee", Unity: Kilogram, Price: 4})
	require.NoError(t, err)
	milk, err := service.Create(context.Background(), Input{Name: "Milk", Unity: Liter, Price: 3})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), milk.ID, Input{Name: "Coffee", Unity: Liter, Price: 3})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestDeleteAllowsStaleReferences(t *testing.T) {
	service := NewService(NewInMemoryRepository(), fixedCounter(3), nil)
	ing, err := service.Create(context.Background(), Input{Name: "Coffee", Unity: Kilogram, Price: 4})
	require.NoError(t, err)

	msg, err := service.Delete(context.Background(), ing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ingredient with id:"+ing.ID+" deleted ", msg)

	_, err = service.Get(context.Background(), ing.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = service.Delete(context.Background(), ing.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
