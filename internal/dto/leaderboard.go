package dto

import "time"

type StandingDTO struct {
	UserID        string `json:"userId"`
	Rank          int    `json:"rank"`
	Points        int64  `json:"points"`
	Wins          int    `json:"wins"`
	MatchesPlayed int    `json:"matchesPlayed"`
	TotalPayout   int64  `json:"totalPayout"`
	Eligible      bool   `json:"eligible"`
}

type LeaderboardResponseDTO struct {
	WeekStart     time.Time     `json:"weekStart"`
	WeekEnd       time.Time     `json:"weekEnd"`
	IsDistributed bool          `json:"isDistributed"`
	Standings     []StandingDTO `json:"standings"`
}

type RewardResponseDTO struct {
	ID             string    `json:"id"`
	WeeklyPeriodID string    `json:"weeklyPeriodId"`
	Rank           int       `json:"rank"`
	Points         int64     `json:"points"`
	RewardAmount   int64     `json:"rewardAmount"`
	IsClaimed      bool      `json:"isClaimed"`
	CreatedAt      time.Time `json:"createdAt"`
}
