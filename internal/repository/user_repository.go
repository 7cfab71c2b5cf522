package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Stanley42442/OptiSolveLabs/internal/model"
	"github.com/Stanley42442/OptiSolveLabs/internal/service"
)

// UserRepository provides data access for admin users using pgx.
type UserRepository struct {
	pool PoolInterface
}

// NewUserRepository creates a new UserRepository with the given pool.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// NewUserRepositoryWithPool creates a new UserRepository with a custom pool interface.
func NewUserRepositoryWithPool(pool PoolInterface) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetUser returns nil, nil if no user has the id. Ids that are not UUIDs never match.
func (r *UserRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT id::text, username, password FROM users WHERE id = $1`, parsed)
}

// GetUserByUsername returns nil, nil if no user has the username.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getOne(ctx, `SELECT id::text, username, password FROM users WHERE username = $1`, username)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var user model.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %v: %w", arg, err)
	}
	return &user, nil
}

// CreateUser assigns a new UUID to user and inserts it.
// Returns service.ErrUsernameTaken if the username is already used.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	id := uuid.New()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, username, password) VALUES ($1, $2, $3)`,
		id, user.Username, user.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return service.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = id.String()
	return nil
}
