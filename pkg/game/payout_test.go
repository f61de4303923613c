package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcPot(t *testing.T) {
	tests := []struct {
		name          string
		rounds        int
		stakePerRound int64
		expected      int64
	}{
		{name: "Single round minimum stake", rounds: 1, stakePerRound: 100, expected: 200},
		{name: "Three rounds mid stake", rounds: 3, stakePerRound: 500, expected: 3000},
		{name: "Five rounds max stake", rounds: 5, stakePerRound: 1000, expected: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalcPot(tt.rounds, tt.stakePerRound))
		})
	}
}

func TestCalcFees(t *testing.T) {
	fees := CalcFees(600)
	assert.Equal(t, int64(60), fees.Total)
	assert.Equal(t, int64(30), fees.Treasury)
	assert.Equal(t, int64(30), fees.Burn)
	assert.Equal(t, fees.Total, fees.Treasury+fees.Burn)
}

func TestPayoutFromPot(t *testing.T) {
	payout := PayoutFromPot(600)
	assert.Equal(t, int64(540), payout.Winner)
	assert.Equal(t, int64(60), payout.Fees.Total)
}

func TestPayoutConservation(t *testing.T) {
	// Awkward pots included on purpose: the rounding remainder must land in
	// the burn share, never get lost.
	pots := []int64{200, 600, 1000, 3000, 10000, 1, 7, 99, 101, 12345}
	for _, pot := range pots {
		payout := PayoutFromPot(pot)
		assert.Equal(t, pot, payout.Fees.Treasury+payout.Fees.Burn+payout.Winner,
			"pot %d must be fully conserved", pot)
		assert.GreaterOrEqual(t, payout.Fees.Treasury, int64(0))
		assert.GreaterOrEqual(t, payout.Fees.Burn, int64(0))
		assert.GreaterOrEqual(t, payout.Winner, int64(0))
	}
}

func TestCalcWeeklyDistribution(t *testing.T) {
	var splitTotal int64
	for _, pct := range WeeklyRewardSplit {
		splitTotal += pct
	}
	assert.Equal(t, int64(100), splitTotal)

	amounts := CalcWeeklyDistribution(10000)
	assert.Len(t, amounts, 10)
	assert.Equal(t, int64(5000), amounts[0])
	assert.Equal(t, int64(2000), amounts[1])
	assert.Equal(t, int64(200), amounts[9])

	// Floor rounding must never overrun the pool.
	for _, pool := range []int64{0, 1, 99, 101, 999, 12345} {
		var sum int64
		for _, a := range CalcWeeklyDistribution(pool) {
			sum += a
		}
		assert.LessOrEqual(t, sum, pool)
	}
}
