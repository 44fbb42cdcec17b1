package product

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"profranchising/internal/apperr"
	"profranchising/internal/ingredient"
	"profranchising/internal/logger"
)

// IngredientResolver confirms every referenced ingredient exists.
type IngredientResolver interface {
	ResolveAll(ctx context.Context, refs []ingredient.Ref) error
}

// CostRecorder appends a cost record for a stored product.
type CostRecorder interface {
	RecordCost(ctx context.Context, productID string) error
}

// ImageStore keeps uploaded product images and returns their public reference.
type ImageStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Options struct {
	// RecomputeCostOnEdit appends a fresh cost record after every edit.
	RecomputeCostOnEdit bool
}

type Service struct {
	repo     Repository
	resolver IngredientResolver
	costs    CostRecorder
	images   ImageStore
	opts     Options
	log      *zap.Logger
}

func NewService(
	repo Repository,
	resolver IngredientResolver,
	costs CostRecorder,
	images ImageStore,
	opts Options,
	log *zap.Logger,
) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		costs:    costs,
		images:   images,
		opts:     opts,
		log:      logger.OrNop(log),
	}
}

// Create stores the product once every ingredient resolves, then appends its
// cost record. A cost failure after the insert leaves the product stored.
func (s *Service) Create(ctx context.Context, in Input) (*Product, error) {
	if err := s.resolver.ResolveAll(ctx, in.Ingredients); err != nil {
		return nil, err
	}

	p := &Product{
		Name:        in.Name,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Ingredients: in.Ingredients,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, apperr.Internal("insert product", err)
	}

	if err := s.costs.RecordCost(ctx, p.ID); err != nil {
		s.log.Error("product stored without cost record", zap.String("id", p.ID), zap.Error(err))
		return nil, err
	}

	s.log.Info("product created", zap.String("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("list products", err)
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperr.Internal("find product", err)
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (string, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return "", err
	}
	if err := s.resolver.ResolveAll(ctx, in.Ingredients); err != nil {
		return "", err
	}

	p := &Product{
		ID:          id,
		Name:        in.Name,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Ingredients: in.Ingredients,
	}
	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", apperr.NotFound("Product not found")
		}
		return "", apperr.Internal("update product", err)
	}

	if s.opts.RecomputeCostOnEdit {
		if err := s.costs.RecordCost(ctx, id); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("Product with id:%s updated", id), nil
}

func (s *Service) Delete(ctx context.Context, id string) (string, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", apperr.NotFound("Product not found")
		}
		return "", apperr.Internal("delete product", err)
	}

	return fmt.Sprintf("Product with id:%s deleted", id), nil
}

// AttachImage stores the image as <id>.jpeg and records its reference on the product.
func (s *Service) AttachImage(ctx context.Context, id string, body io.Reader, contentType string) (*Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ref, err := s.images.Upload(ctx, id+".jpeg", body, contentType)
	if err != nil {
		return nil, apperr.Internal("upload image", err)
	}

	if err := s.repo.SetImage(ctx, id, ref); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, apperr.Internal("set product image", err)
	}

	p.Image = ref
	return p, nil
}
