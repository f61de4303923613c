package game

// Fee schedule, in percent of the pot. TreasuryRatePercent must never exceed
// FeeRatePercent; the burn share is the remainder of the total fee so that
// treasury + burn always equals the total fee exactly.
const (
	FeeRatePercent      = 10
	TreasuryRatePercent = 5
)

// WeeklyRewardSplit is the percentage of the weekly pool paid per rank,
// first place first. Sums to 100.
var WeeklyRewardSplit = []int64{50, 20, 10, 5, 5, 2, 2, 2, 2, 2}

// FeeBreakdown is the fee side of a settled pot.
type FeeBreakdown struct {
	Total    int64
	Treasury int64
	Burn     int64
}

// Payout is the full split of a pot between the winner and the fee sinks.
type Payout struct {
	Winner int64
	Fees   FeeBreakdown
}

// CalcPot returns the total escrowed amount for a session: both sides stake
// rounds * stakePerRound.
func CalcPot(rounds int, stakePerRound int64) int64 {
	return int64(rounds) * stakePerRound * 2
}

// CalcFees splits the pot's fee portion. The treasury share is floored; the
// burn share absorbs the rounding remainder so the parts sum exactly.
func CalcFees(pot int64) FeeBreakdown {
	total := pot * FeeRatePercent / 100
	treasury := pot * TreasuryRatePercent / 100
	return FeeBreakdown{
		Total:    total,
		Treasury: treasury,
		Burn:     total - treasury,
	}
}

// PayoutFromPot computes the winner payout and fees for a decided match.
// Invariant: Fees.Treasury + Fees.Burn + Winner == pot. Draws bypass this
// entirely: each side is refunded its own stake and no fee is taken.
func PayoutFromPot(pot int64) Payout {
	fees := CalcFees(pot)
	return Payout{
		Winner: pot - fees.Total,
		Fees:   fees,
	}
}

// CalcWeeklyDistribution converts a weekly pool into per-rank reward amounts,
// floor-rounded per rank.
func CalcWeeklyDistribution(totalPool int64) []int64 {
	amounts := make([]int64, len(WeeklyRewardSplit))
	for i, pct := range WeeklyRewardSplit {
		amounts[i] = totalPool * pct / 100
	}
	return amounts
}
