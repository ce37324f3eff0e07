package actions

import (
	"fmt"

	"github.com/nathoo/roadsaga/engine/dice"
	"github.com/nathoo/roadsaga/engine/state"
)

// Slot machine layout and payouts.
const (
	ReelCount   = 3
	ReelSymbols = 7
	TriplePay   = 100
	PairPay     = 10
)

// Payout returns the winnings for a set of reels.
func Payout(reels []int) int {
	counts := make(map[int]int, len(reels))
	best := 0
	for _, r := range reels {
		counts[r]++
		if counts[r] > best {
			best = counts[r]
		}
	}
	switch {
	case best >= 3:
		return TriplePay
	case best == 2:
		return PairPay
	default:
		return 0
	}
}

func spin(s *state.State, src dice.Source) Outcome {
	reels := make([]int, ReelCount)
	for i := range reels {
		reels[i] = src.Roll(ReelSymbols)
	}
	pay := Payout(reels)
	s.Hero.Cash += pay

	msg := fmt.Sprintf("[%d] [%d] [%d] ", reels[0], reels[1], reels[2])
	switch pay {
	case TriplePay:
		msg += fmt.Sprintf("Jackpot! You win $%d.", pay)
	case PairPay:
		msg += fmt.Sprintf("A pair. You win $%d.", pay)
	default:
		msg += "Nothing."
	}
	return Outcome{Changed: true, Message: msg, Reels: reels, Payout: pay}
}
