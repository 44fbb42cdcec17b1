package cost

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO costs (id, product_id, name, cost)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, rec.ID, rec.ProductID, rec.Name, rec.Cost).Scan(&rec.CreatedAt)
}

func (r *PostgresRepository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, name, cost, created_at
		FROM costs
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *PostgresRepository) ListByName(ctx context.Context, name string) ([]Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, name, cost, created_at
		FROM costs
		WHERE name = $1
		ORDER BY created_at
	`, name)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func collect(rows pgx.Rows) ([]Record, error) {
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Name, &rec.Cost, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
