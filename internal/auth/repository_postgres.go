package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, name, username, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Username, user.Password, string(user.Role),
	).Scan(&user.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrUsernameTaken
	}
	return err
}

func (r *PostgresUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, name, username, password, role, created_at
		FROM users WHERE username = $1
	`

	user := &User{}
	var role string
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Name, &user.Username, &user.Password, &role, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	user.Role = Role(role)
	return user, nil
}

func (r *PostgresUserRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, username, role, created_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		var role string
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &role, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Role = Role(role)
		users = append(users, u)
	}
	return users, rows.Err()
}

type PostgresLoginRepository struct {
	db *pgxpool.Pool
}

func NewPostgresLoginRepository(db *pgxpool.Pool) *PostgresLoginRepository {
	return &PostgresLoginRepository{db: db}
}

func (r *PostgresLoginRepository) Record(ctx context.Context, login *Login) error {
	if login.ID == "" {
		login.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO logins (id, username, logged_at)
		VALUES ($1, $2, $3)
	`, login.ID, login.Username, login.Date)
	return err
}
