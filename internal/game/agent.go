package game

import "github.com/lox/drawpoker/poker"

// Decision is an action together with its amount. Amount is the bet or raise
// size; it is ignored for check, call and fold.
type Decision struct {
	Action Action
	Amount int
}

// RoundView is the read-only state handed to an agent when it must act
type RoundView struct {
	Stage    Stage
	Hand     poker.Hand
	ToCall   int
	Pot      int
	Bank     int
	OppBank  int
	CanRaise bool
}

// Agent supplies decisions for the player seat. Implementations block until
// input is available and only return choices drawn from the valid action
// list; the engine still validates and re-prompts on a rejected decision.
type Agent interface {
	// Act returns the player's decision for the current betting turn
	Act(view RoundView, valid []ValidAction) (Decision, error)

	// ChooseDiscards returns the 0-based indexes of cards to throw away
	// during the draw phase: deduplicated, at most three
	ChooseDiscards(hand poker.Hand) ([]int, error)
}
