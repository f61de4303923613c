package domain

import (
	"time"

	"github.com/solrps/arena/pkg/game"
)

// SessionStatus is the closed lifecycle state set of a wager session.
type SessionStatus string

const (
	// StatusOpen session is created and waiting for a challenger.
	StatusOpen SessionStatus = "OPEN"
	// StatusAwaitingReveal challenger joined, creator must reveal before the deadline.
	StatusAwaitingReveal SessionStatus = "AWAITING_REVEAL"
	// StatusResolved creator revealed and the match was settled.
	StatusResolved SessionStatus = "RESOLVED"
	// StatusForfeited creator missed the deadline, challenger claimed the pot.
	StatusForfeited SessionStatus = "FORFEITED"
	// StatusCancelled creator withdrew the session before anyone joined.
	StatusCancelled SessionStatus = "CANCELLED"
)

type User struct {
	ID          string    `db:"id"`
	DisplayName string    `db:"display_name"`
	Balance     int64     `db:"balance"`
	CreatedAt   time.Time `db:"created_at"`
}

type Session struct {
	ID              string        `db:"id"`
	Status          SessionStatus `db:"status"`
	Rounds          int           `db:"rounds"`
	StakePerRound   int64         `db:"stake_per_round"`
	TotalStake      int64         `db:"total_stake"`
	CreatorID       string        `db:"creator_id"`
	ChallengerID    string        `db:"challenger_id"`
	CommitHash      string        `db:"commit_hash"`
	CreatorMoves    []game.Move   `db:"creator_moves"`
	ChallengerMoves []game.Move   `db:"challenger_moves"`
	RevealDeadline  time.Time     `db:"reveal_deadline"`
	IsPrivate       bool          `db:"is_private"`
	CreatedAt       time.Time     `db:"created_at"`
	ResolvedAt      *time.Time    `db:"resolved_at"`
}

type MatchResult struct {
	ID             string              `db:"id"`
	SessionID      string              `db:"session_id"`
	RoundsOutcome  []game.RoundOutcome `db:"rounds_outcome"`
	CreatorWins    int                 `db:"creator_wins"`
	ChallengerWins int                 `db:"challenger_wins"`
	Draws          int                 `db:"draws"`
	Overall        game.Overall        `db:"overall"`
	Pot            int64               `db:"pot"`
	FeesTreasury   int64               `db:"fees_treasury"`
	FeesBurn       int64               `db:"fees_burn"`
	PayoutWinner   int64               `db:"payout_winner"`
	WinnerUserID   string              `db:"winner_user_id"`
	CreatedAt      time.Time           `db:"created_at"`
}

// SettledMatch is a MatchResult joined with the participants of its session,
// used by aggregation queries.
type SettledMatch struct {
	MatchResult
	CreatorID    string `db:"creator_id"`
	ChallengerID string `db:"challenger_id"`
}

type WeeklyPeriod struct {
	ID               string     `db:"id"`
	WeekStart        time.Time  `db:"week_start"`
	WeekEnd          time.Time  `db:"week_end"`
	TotalRewardsPool int64      `db:"total_rewards_pool"`
	TotalMatches     int        `db:"total_matches"`
	IsDistributed    bool       `db:"is_distributed"`
	DistributedAt    *time.Time `db:"distributed_at"`
}

type WeeklyReward struct {
	ID             string    `db:"id"`
	WeeklyPeriodID string    `db:"weekly_period_id"`
	UserID         string    `db:"user_id"`
	Rank           int       `db:"rank"`
	Points         int64     `db:"points"`
	RewardAmount   int64     `db:"reward_amount"`
	IsClaimed      bool      `db:"is_claimed"`
	CreatedAt      time.Time `db:"created_at"`
}
