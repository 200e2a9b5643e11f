package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/taskhive/server/internal/domain"
	"github.com/taskhive/server/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, name, email, password_hash, role, profile_pic, coins, created_at
        FROM users
        WHERE email = $1
    `
	row := r.db.QueryRow(ctx, query, email)
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.ProfilePic, &user.Coins, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (name, email, password_hash, role, profile_pic, coins)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Role, user.ProfilePic, user.Coins).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Debit is a single guarded check-and-decrement; concurrent debits on the same
// account can never jointly overdraw it. Returns false when the balance is
// below amount (the row stays untouched).
func (r *Repository) Debit(ctx context.Context, email string, amount int64) (bool, error) {
	query := `
        UPDATE users
        SET coins = coins - $1
        WHERE email = $2 AND coins >= $1
    `
	tag, err := r.db.Exec(ctx, query, amount, email)
	if err != nil {
		zap.L().Error("can't debit account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Credit(ctx context.Context, email string, amount int64) (bool, error) {
	query := `
        UPDATE users
        SET coins = coins + $1
        WHERE email = $2
    `
	tag, err := r.db.Exec(ctx, query, amount, email)
	if err != nil {
		zap.L().Error("can't credit account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
