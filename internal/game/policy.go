package game

import (
	rand "math/rand/v2"

	"github.com/lox/drawpoker/poker"
)

// PolicyConfig tunes the opponent decision table
type PolicyConfig struct {
	// MinBet is the floor for bet and raise sizing
	MinBet int
	// SpeculativeCallLimit is the largest bet worth a speculative call on a
	// high-card hand
	SpeculativeCallLimit int
	// SpeculativeCallChance is the probability of that speculative call
	SpeculativeCallChance float64
}

// DefaultPolicyConfig returns the standard opponent tuning
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		MinBet:                2,
		SpeculativeCallLimit:  1,
		SpeculativeCallChance: 0.3,
	}
}

// Policy is the scripted opponent: a decision table keyed on the evaluated
// hand category, plus the draw-phase discard rules. It is deterministic
// except for a single random draw deciding a speculative call on a weak hand
// facing a trivial bet.
type Policy struct {
	cfg  PolicyConfig
	roll func() float64
}

// NewPolicy creates a policy drawing its one random decision from rng
func NewPolicy(rng *rand.Rand, cfg PolicyConfig) *Policy {
	return &Policy{cfg: cfg, roll: rng.Float64}
}

// Decide returns the opponent's action for the current betting turn. It
// never proposes an illegal action: raising is only suggested when canRaise
// holds and the bank strictly covers the call, and betting only with a
// positive bank.
func (p *Policy) Decide(stage Stage, hand poker.Hand, canRaise bool, toCall, bank, pot int) Decision {
	cat := poker.Evaluate(hand).Category()

	if toCall > 0 {
		switch {
		case cat >= poker.ThreeOfAKind:
			if canRaise && bank > toCall && pot >= p.cfg.MinBet {
				amount := min(bank-toCall, max(p.cfg.MinBet, pot/4))
				return Decision{Action: Raise, Amount: max(1, amount)}
			}
			return Decision{Action: Call}

		case cat == poker.TwoPair:
			// call modest bets, fold to big ones
			if toCall <= max(2, pot/3) || toCall <= bank/6 {
				return Decision{Action: Call}
			}
			return Decision{Action: Fold}

		case cat == poker.Pair:
			if toCall <= max(1, pot/5) {
				return Decision{Action: Call}
			}
			return Decision{Action: Fold}

		default:
			if toCall <= p.cfg.SpeculativeCallLimit && p.roll() < p.cfg.SpeculativeCallChance {
				return Decision{Action: Call}
			}
			return Decision{Action: Fold}
		}
	}

	if cat >= poker.ThreeOfAKind && bank > 0 {
		return Decision{Action: Bet, Amount: p.betSize(pot, bank)}
	}
	// two pair is worth a value bet once the draw is done
	if stage == PostDraw && cat == poker.TwoPair && bank > 0 {
		return Decision{Action: Bet, Amount: p.betSize(pot, bank)}
	}
	return Decision{Action: Check}
}

func (p *Policy) betSize(pot, bank int) int {
	size := p.cfg.MinBet
	if pot > 0 {
		size = max(p.cfg.MinBet, pot/4)
	}
	return min(bank, size)
}

// ChooseDiscards returns the 0-based indexes of cards the opponent throws
// away: nothing with two pair or better, the off-cards with one pair, and
// otherwise everything but up to two queen-or-better cards, capped at three
// discards so the hand is never fully mucked.
func (p *Policy) ChooseDiscards(hand poker.Hand) []int {
	cat := poker.Evaluate(hand).Category()
	if cat >= poker.TwoPair {
		return nil
	}

	if cat == poker.Pair {
		var counts [15]int
		for _, c := range hand {
			counts[c.Rank]++
		}
		var pairRank poker.Rank
		for r := poker.Two; r <= poker.Ace; r++ {
			if counts[r] == 2 {
				pairRank = r
			}
		}
		var discards []int
		for i, c := range hand {
			if c.Rank != pairRank {
				discards = append(discards, i)
			}
		}
		return discards
	}

	kept := 0
	var discards []int
	for i, c := range hand {
		if c.Rank >= poker.Queen && kept < 2 {
			kept++
			continue
		}
		discards = append(discards, i)
	}
	if len(discards) > 3 {
		discards = discards[:3]
	}
	return discards
}
