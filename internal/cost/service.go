package cost

import (
	"context"
	"strings"

	"profranchising/internal/apperr"
)

type Service struct {
	repo       Repository
	calculator *Calculator
}

func NewService(repo Repository, calculator *Calculator) *Service {
	return &Service{repo: repo, calculator: calculator}
}

// List returns the whole ledger, or only the records of one product name.
func (s *Service) List(ctx context.Context, name string) ([]Record, error) {
	var (
		records []Record
		err     error
	)
	if name = strings.TrimSpace(name); name != "" {
		records, err = s.repo.ListByName(ctx, name)
	} else {
		records, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, apperr.Internal("list costs", err)
	}
	return records, nil
}

func (s *Service) Compute(ctx context.Context, productID string) (*Record, error) {
	return s.calculator.Compute(ctx, productID)
}
