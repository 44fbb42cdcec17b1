package ingredient

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*Ingredient
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]*Ingredient)}
}

func (r *InMemoryRepository) Insert(_ context.Context, ing *Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(ing.Name, "") {
		return ErrDuplicateName
	}
	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	ing.CreatedAt, ing.UpdatedAt = now, now

	stored := *ing
	r.items[ing.ID] = &stored
	return nil
}

func (r *InMemoryRepository) FindByID(_ context.Context, id string) (*Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ing, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *ing
	return &found, nil
}

func (r *InMemoryRepository) FindByName(_ context.Context, name string) (*Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ing := range r.items {
		if ing.Name == name {
			found := *ing
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) List(_ context.Context) ([]Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Ingredient, 0, len(r.items))
	for _, ing := range r.items {
		out = append(out, *ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryRepository) Update(_ context.Context, ing *Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[ing.ID]
	if !ok {
		return ErrNotFound
	}
	if r.nameTaken(ing.Name, ing.ID) {
		return ErrDuplicateName
	}

	current.Name = ing.Name
	current.Unity = ing.Unity
	current.Price = ing.Price
	current.UpdatedAt = time.Now().UTC()
	*ing = *current
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// nameTaken must be called with the lock held.
func (r *InMemoryRepository) nameTaken(name, exceptID string) bool {
	for id, ing := range r.items {
		if ing.Name == name && id != exceptID {
			return true
		}
	}
	return false
}
