package game

import (
	"errors"
	"fmt"
)

// Move is one of the three rock-paper-scissors throws.
type Move string

const (
	MoveRock     Move = "R"
	MovePaper    Move = "P"
	MoveScissors Move = "S"
)

// RoundWinner identifies which side took a single round.
type RoundWinner string

const (
	WinnerA    RoundWinner = "A"
	WinnerB    RoundWinner = "B"
	WinnerDraw RoundWinner = "DRAW"
)

// Overall classifies the aggregate outcome of a match.
type Overall string

const (
	OverallCreator    Overall = "CREATOR"
	OverallChallenger Overall = "CHALLENGER"
	OverallDraw       Overall = "DRAW"
)

var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrEmptyMoves     = errors.New("moves must not be empty")
	ErrLengthMismatch = errors.New("move sequences must have equal length")
)

// RoundOutcome records the judged result of one round.
type RoundOutcome struct {
	Round  int         `json:"round"`
	A      Move        `json:"a"`
	B      Move        `json:"b"`
	Winner RoundWinner `json:"winner"`
}

// Tally aggregates per-round outcomes into a match verdict.
type Tally struct {
	Outcomes []RoundOutcome
	AWins    int
	BWins    int
	Draws    int
	Overall  Overall
}

// ParseMove validates a raw move string against the closed move set.
func ParseMove(s string) (Move, error) {
	switch Move(s) {
	case MoveRock, MovePaper, MoveScissors:
		return Move(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMove, s)
}

// ParseMoves validates an ordered list of raw move strings.
func ParseMoves(raw []string) ([]Move, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyMoves
	}
	moves := make([]Move, len(raw))
	for i, s := range raw {
		m, err := ParseMove(s)
		if err != nil {
			return nil, err
		}
		moves[i] = m
	}
	return moves, nil
}

// JudgeRound resolves a single round under standard precedence:
// rock beats scissors, scissors beats paper, paper beats rock.
func JudgeRound(a, b Move) RoundWinner {
	if a == b {
		return WinnerDraw
	}
	if (a == MoveRock && b == MoveScissors) ||
		(a == MovePaper && b == MoveRock) ||
		(a == MoveScissors && b == MovePaper) {
		return WinnerA
	}
	return WinnerB
}

// TallyOutcome judges every round of two equal-length move sequences and
// classifies the match. Side A wins overall only if its win count strictly
// exceeds side B's; equal counts are a draw even when both are nonzero.
func TallyOutcome(aMoves, bMoves []Move) (*Tally, error) {
	if len(aMoves) == 0 || len(bMoves) == 0 {
		return nil, ErrEmptyMoves
	}
	if len(aMoves) != len(bMoves) {
		return nil, ErrLengthMismatch
	}

	t := &Tally{Outcomes: make([]RoundOutcome, 0, len(aMoves))}
	for i := range aMoves {
		winner := JudgeRound(aMoves[i], bMoves[i])
		t.Outcomes = append(t.Outcomes, RoundOutcome{
			Round:  i + 1,
			A:      aMoves[i],
			B:      bMoves[i],
			Winner: winner,
		})
		switch winner {
		case WinnerA:
			t.AWins++
		case WinnerB:
			t.BWins++
		default:
			t.Draws++
		}
	}

	switch {
	case t.AWins > t.BWins:
		t.Overall = OverallCreator
	case t.BWins > t.AWins:
		t.Overall = OverallChallenger
	default:
		t.Overall = OverallDraw
	}
	return t, nil
}
