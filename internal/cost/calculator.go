package cost

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"profranchising/internal/apperr"
	"profranchising/internal/ingredient"
	"profranchising/internal/logger"
	"profranchising/internal/metrics"
	"profranchising/internal/product"
)

// ProductFinder loads the product whose cost is computed.
type ProductFinder interface {
	FindByID(ctx context.Context, id string) (*product.Product, error)
}

// PriceResolver maps every referenced ingredient name to its unit price.
type PriceResolver interface {
	Prices(ctx context.Context, refs []ingredient.Ref) (map[string]float64, error)
}

// Calculator computes product costs and appends them to the ledger.
type Calculator struct {
	products ProductFinder
	prices   PriceResolver
	repo     Repository
	log      *zap.Logger
}

func NewCalculator(products ProductFinder, prices PriceResolver, repo Repository, log *zap.Logger) *Calculator {
	return &Calculator{
		products: products,
		prices:   prices,
		repo:     repo,
		log:      logger.OrNop(log),
	}
}

// Compute sums quantity × unit price over the product's recipe and appends a
// new record. Nothing is written when any ingredient fails to resolve.
func (c *Calculator) Compute(ctx context.Context, productID string) (rec *Record, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordCostComputation(err == nil, time.Since(start))
	}()

	p, err := c.products.FindByID(ctx, productID)
	if errors.Is(err, product.ErrNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperr.Internal("find product", err)
	}

	prices, err := c.prices.Prices(ctx, p.Ingredients)
	if err != nil {
		return nil, err
	}

	rec = &Record{
		ProductID: p.ID,
		Name:      p.Name,
		Cost:      Total(p.Ingredients, prices),
	}
	if err := c.repo.Append(ctx, rec); err != nil {
		return nil, apperr.Internal("append cost", err)
	}

	c.log.Info("cost recorded",
		zap.String("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Float64("cost", rec.Cost),
	)
	return rec, nil
}

// RecordCost lets the product catalog trigger a computation after creation.
func (c *Calculator) RecordCost(ctx context.Context, productID string) error {
	_, err := c.Compute(ctx, productID)
	return err
}

// Total is Σ quantity × price, summed in decimal.
func Total(refs []ingredient.Ref, prices map[string]float64) float64 {
	sum := decimal.Zero
	for _, ref := range refs {
		qty := decimal.NewFromFloat(ref.Quantity)
		price := decimal.NewFromFloat(prices[ref.Name])
		sum = sum.Add(qty.Mul(price))
	}
	total, _ := sum.Float64()
	return total
}
