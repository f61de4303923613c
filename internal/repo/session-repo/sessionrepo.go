package sessionrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/solrps/arena/internal/domain"
	"github.com/solrps/arena/internal/pg"
	"github.com/solrps/arena/pkg/game"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const sessionColumns = `
        id, status, rounds, stake_per_round, total_stake, creator_id, challenger_id,
        commit_hash, creator_moves, challenger_moves, reveal_deadline, is_private,
        created_at, resolved_at`

func (r *Repository) Save(ctx context.Context, s *domain.Session) error {
	query := `
        INSERT INTO sessions (id, status, rounds, stake_per_round, total_stake, creator_id,
                              commit_hash, reveal_deadline, is_private, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Status, s.Rounds, s.StakePerRound, s.TotalStake, s.CreatorID,
		s.CommitHash, s.RevealDeadline, s.IsPrivate, s.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save session", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
        SELECT ` + sessionColumns + `
        FROM sessions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	s, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find session", zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) FindOpen(ctx context.Context, limit int) ([]domain.Session, error) {
	query := `
        SELECT ` + sessionColumns + `
        FROM sessions
        WHERE status = 'OPEN' AND is_private = FALSE
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get open sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *Repository) FindByUser(ctx context.Context, userID string) ([]domain.Session, error) {
	query := `
        SELECT ` + sessionColumns + `
        FROM sessions
        WHERE creator_id = $1 OR challenger_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

// MarkJoined flips an OPEN session to AWAITING_REVEAL, storing the challenger
// and resetting the reveal deadline. Returns false when the session was not
// OPEN anymore, which callers must treat as a rejected transition.
func (r *Repository) MarkJoined(ctx context.Context, id, challengerID string, moves []game.Move, deadline time.Time) (bool, error) {
	query := `
        UPDATE sessions
        SET status = 'AWAITING_REVEAL', challenger_id = $1, challenger_moves = $2, reveal_deadline = $3
        WHERE id = $4 AND status = 'OPEN'
    `
	tag, err := r.db.Exec(ctx, query, challengerID, game.EncodeMoves(moves), deadline, id)
	if err != nil {
		zap.L().Error("can't mark session joined", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) MarkResolved(ctx context.Context, id string, creatorMoves []game.Move, at time.Time) (bool, error) {
	query := `
        UPDATE sessions
        SET status = 'RESOLVED', creator_moves = $1, resolved_at = $2
        WHERE id = $3 AND status = 'AWAITING_REVEAL'
    `
	tag, err := r.db.Exec(ctx, query, game.EncodeMoves(creatorMoves), at, id)
	if err != nil {
		zap.L().Error("can't mark session resolved", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) MarkForfeited(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
        UPDATE sessions
        SET status = 'FORFEITED', resolved_at = $1
        WHERE id = $2 AND status = 'AWAITING_REVEAL'
    `
	tag, err := r.db.Exec(ctx, query, at, id)
	if err != nil {
		zap.L().Error("can't mark session forfeited", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) MarkCancelled(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
        UPDATE sessions
        SET status = 'CANCELLED', resolved_at = $1
        WHERE id = $2 AND status = 'OPEN'
    `
	tag, err := r.db.Exec(ctx, query, at, id)
	if err != nil {
		zap.L().Error("can't mark session cancelled", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var (
		s               domain.Session
		challengerID    sql.NullString
		creatorMoves    sql.NullString
		challengerMoves sql.NullString
	)
	err := row.Scan(
		&s.ID, &s.Status, &s.Rounds, &s.StakePerRound, &s.TotalStake, &s.CreatorID,
		&challengerID, &s.CommitHash, &creatorMoves, &challengerMoves,
		&s.RevealDeadline, &s.IsPrivate, &s.CreatedAt, &s.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	s.ChallengerID = challengerID.String
	if creatorMoves.Valid && creatorMoves.String != "" {
		if s.CreatorMoves, err = game.DecodeMoves(creatorMoves.String); err != nil {
			return nil, err
		}
	}
	if challengerMoves.Valid && challengerMoves.String != "" {
		if s.ChallengerMoves, err = game.DecodeMoves(challengerMoves.String); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func scanSessions(rows pgx.Rows) ([]domain.Session, error) {
	var sessions []domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			zap.L().Error("can't scan session row", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, nil
}
