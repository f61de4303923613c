package resultrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

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

func (r *Repository) Save(ctx context.Context, result *domain.MatchResult) error {
	outcome, err := json.Marshal(result.RoundsOutcome)
	if err != nil {
		zap.L().Error("can't marshal rounds outcome", zap.Error(err))
		return err
	}
	var winnerID any
	if result.WinnerUserID != "" {
		winnerID = result.WinnerUserID
	}
	query := `
        INSERT INTO match_results (id, session_id, rounds_outcome, creator_wins, challenger_wins,
                                   draws, overall, pot, fees_treasury, fees_burn, payout_winner,
                                   winner_user_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	_, err = r.db.Exec(ctx, query,
		result.ID, result.SessionID, outcome, result.CreatorWins, result.ChallengerWins,
		result.Draws, result.Overall, result.Pot, result.FeesTreasury, result.FeesBurn,
		result.PayoutWinner, winnerID, result.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save match result", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindBySessionID(ctx context.Context, sessionID string) (*domain.MatchResult, error) {
	query := `
        SELECT id, session_id, rounds_outcome, creator_wins, challenger_wins, draws, overall,
               pot, fees_treasury, fees_burn, payout_winner, winner_user_id, created_at
        FROM match_results
        WHERE session_id = $1
    `
	row := r.db.QueryRow(ctx, query, sessionID)

	var (
		result   domain.MatchResult
		outcome  []byte
		winnerID sql.NullString
	)
	err := row.Scan(
		&result.ID, &result.SessionID, &outcome, &result.CreatorWins, &result.ChallengerWins,
		&result.Draws, &result.Overall, &result.Pot, &result.FeesTreasury, &result.FeesBurn,
		&result.PayoutWinner, &winnerID, &result.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find match result", zap.Error(err))
		return nil, err
	}
	if err := json.Unmarshal(outcome, &result.RoundsOutcome); err != nil {
		zap.L().Error("can't unmarshal rounds outcome", zap.Error(err))
		return nil, err
	}
	result.WinnerUserID = winnerID.String
	return &result, nil
}

// FindByWindow returns settled results created inside [from, to), joined with
// the participants of the owning session.
func (r *Repository) FindByWindow(ctx context.Context, from, to time.Time) ([]domain.SettledMatch, error) {
	query := `
        SELECT mr.id, mr.session_id, mr.rounds_outcome, mr.creator_wins, mr.challenger_wins,
               mr.draws, mr.overall, mr.pot, mr.fees_treasury, mr.fees_burn, mr.payout_winner,
               mr.winner_user_id, mr.created_at, s.creator_id, s.challenger_id
        FROM match_results mr
        JOIN sessions s ON s.id = mr.session_id
        WHERE mr.created_at >= $1 AND mr.created_at < $2
        ORDER BY mr.created_at ASC
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't get match results for window", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanSettledMatches(rows)
}

func (r *Repository) FindByUser(ctx context.Context, userID string) ([]domain.SettledMatch, error) {
	query := `
        SELECT mr.id, mr.session_id, mr.rounds_outcome, mr.creator_wins, mr.challenger_wins,
               mr.draws, mr.overall, mr.pot, mr.fees_treasury, mr.fees_burn, mr.payout_winner,
               mr.winner_user_id, mr.created_at, s.creator_id, s.challenger_id
        FROM match_results mr
        JOIN sessions s ON s.id = mr.session_id
        WHERE s.creator_id = $1 OR s.challenger_id = $1
        ORDER BY mr.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get match results for user", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanSettledMatches(rows)
}

func scanSettledMatches(rows pgx.Rows) ([]domain.SettledMatch, error) {
	var matches []domain.SettledMatch
	for rows.Next() {
		var (
			m            domain.SettledMatch
			outcome      []byte
			winnerID     sql.NullString
			challengerID sql.NullString
		)
		err := rows.Scan(
			&m.ID, &m.SessionID, &outcome, &m.CreatorWins, &m.ChallengerWins,
			&m.Draws, &m.Overall, &m.Pot, &m.FeesTreasury, &m.FeesBurn, &m.PayoutWinner,
			&winnerID, &m.CreatedAt, &m.CreatorID, &challengerID,
		)
		if err != nil {
			zap.L().Error("can't scan match result row", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(outcome, &m.RoundsOutcome); err != nil {
			zap.L().Error("can't unmarshal rounds outcome", zap.Error(err))
			return nil, err
		}
		m.WinnerUserID = winnerID.String
		m.ChallengerID = challengerID.String
		matches = append(matches, m)
	}
	return matches, nil
}
