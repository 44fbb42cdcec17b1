package ingredient

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"profranchising/internal/apperr"
)

// maxConcurrentLookups stays below the Postgres pool size.
const maxConcurrentLookups = 8

// Finder is the part of the catalog the resolver reads.
type Finder interface {
	FindByName(ctx context.Context, name string) (*Ingredient, error)
}

// Resolver checks that every name a recipe references exists in the catalog.
type Resolver struct {
	finder Finder
}

func NewResolver(finder Finder) *Resolver {
	return &Resolver{finder: finder}
}

// ResolveAll fails with NotFound naming one missing ingredient. It has no side effects.
func (r *Resolver) ResolveAll(ctx context.Context, refs []Ref) error {
	_, err := r.Prices(ctx, refs)
	return err
}

// Prices resolves each distinct referenced name to its unit price. Lookups run
// concurrently and the first failure cancels the rest.
func (r *Resolver) Prices(ctx context.Context, refs []Ref) (map[string]float64, error) {
	names := distinctNames(refs)
	prices := make([]float64, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			ing, err := r.finder.FindByName(gctx, name)
			if errors.Is(err, ErrNotFound) {
				return apperr.NotFound("Ingredient with name %s not found", name)
			}
			if err != nil {
				return apperr.Internal("find ingredient "+name, err)
			}
			prices[i] = ing.Price
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(names))
	for i, name := range names {
		out[name] = prices[i]
	}
	return out, nil
}

func distinctNames(refs []Ref) []string {
	seen := make(map[string]struct{}, len(refs))
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref.Name]; ok {
			continue
		}
		seen[ref.Name] = struct{}{}
		names = append(names, ref.Name)
	}
	return names
}
