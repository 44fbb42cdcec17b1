package ingredient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, ing *Ingredient) error {
	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO ingredients (id, name, unity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, ing.ID, ing.Name, string(ing.Unity), ing.Price).Scan(&ing.CreatedAt, &ing.UpdatedAt)

	return translate(err)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Ingredient, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *PostgresRepository) FindByName(ctx context.Context, name string) (*Ingredient, error) {
	return r.findOne(ctx, `WHERE name = $1`, name)
}

func (r *PostgresRepository) findOne(ctx context.Context, where string, arg any) (*Ingredient, error) {
	var (
		ing   Ingredient
		unity string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, unity, price, created_at, updated_at
		FROM ingredients `+where, arg,
	).Scan(&ing.ID, &ing.Name, &unity, &ing.Price, &ing.CreatedAt, &ing.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	ing.Unity = Unity(unity)
	return &ing, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, unity, price, created_at, updated_at
		FROM ingredients
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Ingredient{}
	for rows.Next() {
		var (
			ing   Ingredient
			unity string
		)
		if err := rows.Scan(&ing.ID, &ing.Name, &unity, &ing.Price, &ing.CreatedAt, &ing.UpdatedAt); err != nil {
			return nil, err
		}
		ing.Unity = Unity(unity)
		items = append(items, ing)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, ing *Ingredient) error {
	err := r.db.QueryRow(ctx, `
		UPDATE ingredients
		SET name = $2, unity = $3, price = $4, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, ing.ID, ing.Name, string(ing.Unity), ing.Price).Scan(&ing.CreatedAt, &ing.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return translate(err)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateName
	}
	return err
}
