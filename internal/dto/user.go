package dto

import "time"

type RegisterRequestDTO struct {
	UserID      string `json:"userId" validate:"required,min=1,max=64" example:"alice"`
	DisplayName string `json:"displayName" validate:"max=100" example:"Alice"`
}

type UserResponseDTO struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Balance     int64     `json:"balance"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MatchHistoryItemDTO struct {
	MatchResultResponseDTO
	CreatorID    string `json:"creatorId"`
	ChallengerID string `json:"challengerId"`
}
