package game

import "errors"

// Stage represents one of the two betting rounds of a draw-poker hand
type Stage int

const (
	PreDraw Stage = iota
	PostDraw
)

func (s Stage) String() string {
	return [...]string{"pre-draw", "post-draw"}[s]
}

// Seat identifies one of the two actors in a hand
type Seat int

const (
	SeatPlayer Seat = iota
	SeatOpponent
)

// Other returns the opposing seat
func (s Seat) Other() Seat {
	if s == SeatPlayer {
		return SeatOpponent
	}
	return SeatPlayer
}

func (s Seat) String() string {
	return [...]string{"player", "opponent"}[s]
}

// Action represents a betting action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise"}[a]
}

// RoundState is the state of a betting round
type RoundState int

const (
	// AwaitingAction means the seat returned by Turn is due to act
	AwaitingAction RoundState = iota
	// RoundComplete means betting resolved and the hand proceeds
	RoundComplete
	// HandFolded means one seat folded; the pot has been paid out and the
	// hand ends without a draw or showdown
	HandFolded
)

// Rejected actions leave the round untouched; the I/O boundary re-prompts the
// human and the engine substitutes a legal fallback for the opponent.
var (
	ErrRoundOver        = errors.New("betting round is over")
	ErrCannotCheck      = errors.New("cannot check facing a bet")
	ErrNothingToCall    = errors.New("no bet to call")
	ErrBetFacingBet     = errors.New("cannot bet facing a bet, raise instead")
	ErrRaiseFacingNoBet = errors.New("cannot raise without a bet, bet instead")
	ErrRaiseLimit       = errors.New("only one raise allowed per round")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInsufficientBank = errors.New("insufficient bank")
)

// ValidAction pairs a legal action with the bounds on its amount. Min and Max
// are zero for actions that carry no amount.
type ValidAction struct {
	Action Action
	Min    int
	Max    int
}

// Round drives a single betting round between the two seats. Banks and the
// pot live on the Session and are only mutated through Apply, which enforces
// turn order, the one-raise-per-round rule and bank-capped payments.
type Round struct {
	session *Session
	stage   Stage
	turn    Seat
	state   RoundState
	toCall  int
	raised  bool
	winner  Seat    // seat awarded the pot when state == HandFolded
	acted   [2]bool // seats that have acted since the round start or last bet
}

// NewRound starts a betting round. The player acts first pre-draw, the
// opponent first post-draw.
func NewRound(session *Session, stage Stage) *Round {
	first := SeatPlayer
	if stage == PostDraw {
		first = SeatOpponent
	}
	return &Round{
		session: session,
		stage:   stage,
		turn:    first,
	}
}

// Stage returns the stage this round belongs to
func (r *Round) Stage() Stage { return r.stage }

// State returns the current round state
func (r *Round) State() RoundState { return r.state }

// Turn returns the seat due to act
func (r *Round) Turn() Seat { return r.turn }

// ToCall returns the amount owed by the seat due to act
func (r *Round) ToCall() int { return r.toCall }

// Raised reports whether the single allowed raise has already happened
func (r *Round) Raised() bool { return r.raised }

// FoldWinner returns the seat awarded the pot by a fold, if any
func (r *Round) FoldWinner() (Seat, bool) {
	return r.winner, r.state == HandFolded
}

// ValidActions enumerates the legal actions for the seat due to act, with
// amount bounds, so callers never have to re-derive legality.
func (r *Round) ValidActions() []ValidAction {
	if r.state != AwaitingAction {
		return nil
	}

	bank := r.session.Bank(r.turn)
	if r.toCall == 0 {
		actions := []ValidAction{{Action: Check}}
		if bank > 0 {
			actions = append(actions, ValidAction{Action: Bet, Min: 1, Max: bank})
		}
		return actions
	}

	paid := min(bank, r.toCall)
	actions := []ValidAction{
		{Action: Call, Min: paid, Max: paid},
		{Action: Fold},
	}
	if !r.raised && bank > r.toCall {
		actions = append(actions, ValidAction{Action: Raise, Min: 1, Max: bank - r.toCall})
	}
	return actions
}

// Apply processes one action for the seat due to act and returns the chips
// actually paid. Illegal actions return an error and leave all state
// unchanged. Call and raise payments are capped at the actor's bank; a
// capped payment clears the actor's obligation but does not end the round
// until the other seat has acted on it.
func (r *Round) Apply(action Action, amount int) (int, error) {
	if r.state != AwaitingAction {
		return 0, ErrRoundOver
	}

	seat := r.turn
	bank := r.session.Bank(seat)

	switch action {
	case Check:
		if r.toCall > 0 {
			return 0, ErrCannotCheck
		}
		r.acted[seat] = true
		if r.acted[seat.Other()] {
			r.state = RoundComplete
		} else {
			r.turn = seat.Other()
		}
		return 0, nil

	case Bet:
		if r.toCall > 0 {
			return 0, ErrBetFacingBet
		}
		if amount <= 0 {
			return 0, ErrInvalidAmount
		}
		if amount > bank {
			return 0, ErrInsufficientBank
		}
		r.session.pay(seat, amount)
		r.toCall = amount
		r.acted = [2]bool{}
		r.acted[seat] = true
		r.turn = seat.Other()
		return amount, nil

	case Call:
		if r.toCall == 0 {
			return 0, ErrNothingToCall
		}
		paid := min(bank, r.toCall)
		r.session.pay(seat, paid)
		r.toCall = 0
		r.acted[seat] = true
		if r.acted[seat.Other()] {
			r.state = RoundComplete
		} else {
			r.turn = seat.Other()
		}
		return paid, nil

	case Raise:
		if r.toCall == 0 {
			return 0, ErrRaiseFacingNoBet
		}
		if r.raised {
			return 0, ErrRaiseLimit
		}
		if amount <= 0 {
			return 0, ErrInvalidAmount
		}
		if bank <= r.toCall {
			return 0, ErrInsufficientBank
		}
		paid := min(bank, r.toCall+amount)
		r.session.pay(seat, paid)
		r.toCall = amount
		r.raised = true
		r.acted = [2]bool{}
		r.acted[seat] = true
		r.turn = seat.Other()
		return paid, nil

	case Fold:
		winner := seat.Other()
		r.session.awardPot(winner)
		r.state = HandFolded
		r.winner = winner
		return 0, nil

	default:
		return 0, ErrInvalidAmount
	}
}
