package dto

import "time"

type CreateSessionRequestDTO struct {
	Rounds        int    `json:"rounds" example:"3"`
	StakePerRound int64  `json:"stakePerRound" example:"100"`
	CommitHash    string `json:"commitHash" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	IsPrivate     bool   `json:"isPrivate" example:"false"`
}

type JoinSessionRequestDTO struct {
	Moves []string `json:"moves" example:"R,P,S"`
}

type RevealSessionRequestDTO struct {
	Moves []string `json:"moves" example:"R,P,S"`
	Salt  string   `json:"salt" example:"c2FsdHNhbHRzYWx0"`
}

type SessionResponseDTO struct {
	ID             string     `json:"id"`
	Status         string     `json:"status"`
	Rounds         int        `json:"rounds"`
	StakePerRound  int64      `json:"stakePerRound"`
	TotalStake     int64      `json:"totalStake"`
	CreatorID      string     `json:"creatorId"`
	ChallengerID   string     `json:"challengerId,omitempty"`
	CommitHash     string     `json:"commitHash"`
	CreatorMoves   []string   `json:"creatorMoves,omitempty"`
	RevealDeadline time.Time  `json:"revealDeadline"`
	IsPrivate      bool       `json:"isPrivate"`
	CreatedAt      time.Time  `json:"createdAt"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
}

type RoundOutcomeDTO struct {
	Round  int    `json:"round"`
	A      string `json:"a"`
	B      string `json:"b"`
	Winner string `json:"winner"`
}

type MatchResultResponseDTO struct {
	SessionID      string            `json:"sessionId"`
	RoundsOutcome  []RoundOutcomeDTO `json:"roundsOutcome"`
	CreatorWins    int               `json:"creatorWins"`
	ChallengerWins int               `json:"challengerWins"`
	Draws          int               `json:"draws"`
	Overall        string            `json:"overall"`
	Pot            int64             `json:"pot"`
	FeesTreasury   int64             `json:"feesTreasury"`
	FeesBurn       int64             `json:"feesBurn"`
	PayoutWinner   int64             `json:"payoutWinner"`
	WinnerUserID   string            `json:"winnerUserId,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

type SessionDetailResponseDTO struct {
	Session SessionResponseDTO      `json:"session"`
	Result  *MatchResultResponseDTO `json:"result,omitempty"`
}
