package cost

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	records []Record
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Append(_ context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.CreatedAt = time.Now().UTC()
	r.records = append(r.records, *rec)
	return nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *InMemoryRepository) ListByName(_ context.Context, name string) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Record{}
	for _, rec := range r.records {
		if rec.Name == name {
			out = append(out, rec)
		}
	}
	return out, nil
}
