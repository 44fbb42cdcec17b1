package product

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"profranchising/internal/ingredient"
)

type InMemoryRepository struct {
	mu       sync.RWMutex
	products map[string]*Product
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{products: make(map[string]*Product)}
}

func (r *InMemoryRepository) Insert(_ context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	r.products[p.ID] = clone(p)
	return nil
}

func (r *InMemoryRepository) FindByID(_ context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(p), nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *clone(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryRepository) Update(_ context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.products[p.ID]
	if !ok {
		return ErrNotFound
	}
	current.Name = p.Name
	current.Price = p.Price
	current.Quantity = p.Quantity
	current.Ingredients = append([]ingredient.Ref(nil), p.Ingredients...)
	current.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *InMemoryRepository) SetImage(_ context.Context, id, image string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.products[id]
	if !ok {
		return ErrNotFound
	}
	current.Image = image
	current.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *InMemoryRepository) CountReferencing(_ context.Context, ingredientName string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, p := range r.products {
		for _, ref := range p.Ingredients {
			if ref.Name == ingredientName {
				n++
				break
			}
		}
	}
	return n, nil
}

func clone(p *Product) *Product {
	c := *p
	c.Ingredients = append([]ingredient.Ref(nil), p.Ingredients...)
	return &c
}
