package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJudgeRound(t *testing.T) {
	tests := []struct {
		name     string
		a        Move
		b        Move
		expected RoundWinner
	}{
		{name: "Rock beats scissors", a: MoveRock, b: MoveScissors, expected: WinnerA},
		{name: "Paper beats rock", a: MovePaper, b: MoveRock, expected: WinnerA},
		{name: "Scissors beat paper", a: MoveScissors, b: MovePaper, expected: WinnerA},
		{name: "Scissors lose to rock", a: MoveScissors, b: MoveRock, expected: WinnerB},
		{name: "Rock loses to paper", a: MoveRock, b: MovePaper, expected: WinnerB},
		{name: "Paper loses to scissors", a: MovePaper, b: MoveScissors, expected: WinnerB},
		{name: "Identical rock draws", a: MoveRock, b: MoveRock, expected: WinnerDraw},
		{name: "Identical paper draws", a: MovePaper, b: MovePaper, expected: WinnerDraw},
		{name: "Identical scissors draw", a: MoveScissors, b: MoveScissors, expected: WinnerDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JudgeRound(tt.a, tt.b))
		})
	}
}

func TestJudgeRound_Symmetry(t *testing.T) {
	moves := []Move{MoveRock, MovePaper, MoveScissors}
	for _, a := range moves {
		for _, b := range moves {
			forward := JudgeRound(a, b)
			reverse := JudgeRound(b, a)
			if forward == WinnerDraw {
				assert.Equal(t, WinnerDraw, reverse)
				continue
			}
			if forward == WinnerA {
				assert.Equal(t, WinnerB, reverse)
			} else {
				assert.Equal(t, WinnerA, reverse)
			}
		}
	}
}

func TestTallyOutcome(t *testing.T) {
	tests := []struct {
		name            string
		aMoves          []Move
		bMoves          []Move
		expectedAWins   int
		expectedBWins   int
		expectedDraws   int
		expectedOverall Overall
	}{
		{
			name:            "Creator wins two of three",
			aMoves:          []Move{MoveRock, MovePaper, MoveScissors},
			bMoves:          []Move{MoveScissors, MoveRock, MoveRock},
			expectedAWins:   2,
			expectedBWins:   1,
			expectedDraws:   0,
			expectedOverall: OverallCreator,
		},
		{
			name:            "Challenger sweeps",
			aMoves:          []Move{MoveRock, MoveRock, MoveRock},
			bMoves:          []Move{MovePaper, MovePaper, MovePaper},
			expectedAWins:   0,
			expectedBWins:   3,
			expectedDraws:   0,
			expectedOverall: OverallChallenger,
		},
		{
			name:            "All rounds drawn",
			aMoves:          []Move{MovePaper, MovePaper},
			bMoves:          []Move{MovePaper, MovePaper},
			expectedAWins:   0,
			expectedBWins:   0,
			expectedDraws:   2,
			expectedOverall: OverallDraw,
		},
		{
			name:            "Equal nonzero win counts draw overall",
			aMoves:          []Move{MoveRock, MovePaper},
			bMoves:          []Move{MoveScissors, MoveScissors},
			expectedAWins:   1,
			expectedBWins:   1,
			expectedDraws:   0,
			expectedOverall: OverallDraw,
		},
		{
			name:            "Single round",
			aMoves:          []Move{MoveScissors},
			bMoves:          []Move{MovePaper},
			expectedAWins:   1,
			expectedBWins:   0,
			expectedDraws:   0,
			expectedOverall: OverallCreator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tally, err := TallyOutcome(tt.aMoves, tt.bMoves)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAWins, tally.AWins)
			assert.Equal(t, tt.expectedBWins, tally.BWins)
			assert.Equal(t, tt.expectedDraws, tally.Draws)
			assert.Equal(t, tt.expectedOverall, tally.Overall)
			assert.Len(t, tally.Outcomes, len(tt.aMoves))
			assert.Equal(t, len(tt.aMoves), tally.AWins+tally.BWins+tally.Draws)
			for i, out := range tally.Outcomes {
				assert.Equal(t, i+1, out.Round)
				assert.Equal(t, tt.aMoves[i], out.A)
				assert.Equal(t, tt.bMoves[i], out.B)
			}
		})
	}
}

func TestTallyOutcome_Errors(t *testing.T) {
	_, err := TallyOutcome(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyMoves)

	_, err = TallyOutcome([]Move{MoveRock}, []Move{MoveRock, MovePaper})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestParseMoves(t *testing.T) {
	tests := []struct {
		name      string
		raw       []string
		expected  []Move
		expectErr error
	}{
		{
			name:     "Valid sequence",
			raw:      []string{"R", "P", "S"},
			expected: []Move{MoveRock, MovePaper, MoveScissors},
		},
		{
			name:      "Empty sequence",
			raw:       nil,
			expectErr: ErrEmptyMoves,
		},
		{
			name:      "Unknown move",
			raw:       []string{"R", "X"},
			expectErr: ErrInvalidMove,
		},
		{
			name:      "Lowercase rejected",
			raw:       []string{"r"},
			expectErr: ErrInvalidMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := ParseMoves(tt.raw)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, moves)
		})
	}
}
