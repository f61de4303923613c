package userrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/solrps/arena/internal/domain"
	"github.com/solrps/arena/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
        SELECT id, display_name, balance, created_at
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var user domain.User
	err := row.Scan(&user.ID, &user.DisplayName, &user.Balance, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Save(ctx context.Context, user *domain.User) error {
	query := `
        INSERT INTO users (id, display_name, balance, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, user.ID, user.DisplayName, user.Balance, user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return err
	}
	return nil
}

// IncrementBalance applies a relative balance change. The guard clause keeps
// a debit from racing the balance below zero; false means the funds were not
// there at commit time.
func (r *Repository) IncrementBalance(ctx context.Context, userID string, delta int64) (bool, error) {
	query := `
        UPDATE users
        SET balance = balance + $1
        WHERE id = $2 AND balance + $1 >= 0
    `
	tag, err := r.db.Exec(ctx, query, delta, userID)
	if err != nil {
		zap.L().Error("can't update user balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
