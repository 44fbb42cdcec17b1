package product

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `id, name, price, quantity, ingredients, image, created_at, updated_at`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, p *Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO products (id, name, price, quantity, ingredients, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, p.ID, p.Name, p.Price, p.Quantity, p.Ingredients, p.Image,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+selectColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+selectColumns+` FROM products ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, p *Product) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $2, price = $3, quantity = $4, ingredients = $5, updated_at = now()
		WHERE id = $1
	`, p.ID, p.Name, p.Price, p.Quantity, p.Ingredients)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetImage(ctx context.Context, id, image string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE products SET image = $2, updated_at = now() WHERE id = $1
	`, id, image)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) CountReferencing(ctx context.Context, ingredientName string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT count(*)
		FROM products
		WHERE ingredients @> jsonb_build_array(jsonb_build_object('name', $1::text))
	`, ingredientName).Scan(&n)
	return n, err
}

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	if err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Ingredients, &p.Image, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
