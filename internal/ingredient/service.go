package ingredient

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"profranchising/internal/apperr"
	"profranchising/internal/logger"
)

// ReferenceCounter reports how many products still reference an ingredient name.
type ReferenceCounter interface {
	CountReferencing(ctx context.Context, ingredientName string) (int, error)
}

type Service struct {
	repo Repository
	refs ReferenceCounter
	log  *zap.Logger
}

// NewService builds the catalog service. refs may be nil.
func NewService(repo Repository, refs ReferenceCounter, log *zap.Logger) *Service {
	return &Service{repo: repo, refs: refs, log: logger.OrNop(log)}
}

func (s *Service) Create(ctx context.Context, in Input) (*Ingredient, error) {
	if err := s.ensureNameFree(ctx, in.Name, ""); err != nil {
		return nil, err
	}

	ing := &Ingredient{Name: in.Name, Unity: in.Unity, Price: in.Price}
	if err := s.repo.Insert(ctx, ing); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, duplicate(in.Name)
		}
		return nil, apperr.Internal("insert ingredient", err)
	}

	s.log.Info("ingredient created", zap.String("id", ing.ID), zap.String("name", ing.Name))
	return ing, nil
}

func (s *Service) List(ctx context.Context) ([]Ingredient, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("list ingredients", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Ingredient, error) {
	ing, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Ingredient not found")
	}
	if err != nil {
		return nil, apperr.Internal("find ingredient", err)
	}
	return ing, nil
}

// Update replaces name, unity and price. Products keep referencing the old
// name if it changes.
func (s *Service) Update(ctx context.Context, id string, in Input) (string, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.ensureNameFree(ctx, in.Name, id); err != nil {
		return "", err
	}

	ing := &Ingredient{ID: id, Name: in.Name, Unity: in.Unity, Price: in.Price}
	if err := s.repo.Update(ctx, ing); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return "", apperr.NotFound("Ingredient not found")
		case errors.Is(err, ErrDuplicateName):
			return "", duplicate(in.Name)
		}
		return "", apperr.Internal("update ingredient", err)
	}

	if current.Name != in.Name {
		s.warnStale(ctx, current.Name, "renamed")
	}
	return fmt.Sprintf("Ingredient with id:%s edited ", id), nil
}

// Delete removes the ingredient without touching products that reference it.
func (s *Service) Delete(ctx context.Context, id string) (string, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", apperr.NotFound("Ingredient not found")
		}
		return "", apperr.Internal("delete ingredient", err)
	}

	s.warnStale(ctx, current.Name, "deleted")
	return fmt.Sprintf("Ingredient with id:%s deleted ", id), nil
}

func (s *Service) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.repo.FindByName(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return apperr.Internal("find ingredient", err)
	}
	if existing.ID != selfID {
		return duplicate(name)
	}
	return nil
}

func (s *Service) warnStale(ctx context.Context, name, action string) {
	if s.refs == nil {
		return
	}
	n, err := s.refs.CountReferencing(ctx, name)
	if err != nil {
		s.log.Warn("count ingredient references", zap.String("name", name), zap.Error(err))
		return
	}
	if n > 0 {
		s.log.Warn("ingredient "+action+" while still referenced",
			zap.String("name", name),
			zap.Int("products", n),
		)
	}
}

func duplicate(name string) error {
	return apperr.Conflict("Ingredient with name %s already exists", name)
}
