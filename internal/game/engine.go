package game

import (
	"fmt"
	rand "math/rand/v2"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

const (
	// DefaultAnte is the forced contribution each seat pays before dealing
	DefaultAnte = 5
	// DefaultStartingBank is each seat's bankroll at the start of a session
	DefaultStartingBank = 50
	// HandSize is the number of cards in a draw-poker hand
	HandSize = 5
)

// Engine runs complete hands of five-card draw between the player seat and
// the scripted opponent: pre-draw betting, the draw, post-draw betting, then
// showdown. It owns the deck and both hands for the duration of a hand.
type Engine struct {
	session *Session
	agent   Agent
	policy  *Policy
	rng     *rand.Rand
	logger  *log.Logger
	bus     *EventBus
	ante    int

	deck         *poker.Deck
	playerHand   poker.Hand
	opponentHand poker.Hand
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the engine logger
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithRNG sets the random source used for shuffling and opponent decisions
func WithRNG(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithPolicy sets the opponent policy
func WithPolicy(policy *Policy) Option {
	return func(e *Engine) { e.policy = policy }
}

// WithEventBus sets the event bus transitions are published to
func WithEventBus(bus *EventBus) Option {
	return func(e *Engine) { e.bus = bus }
}

// WithAnte sets the per-hand ante
func WithAnte(ante int) Option {
	return func(e *Engine) { e.ante = ante }
}

// WithDeck supplies a pre-built deck for the next hand instead of shuffling a
// fresh one. Intended for deterministic tests.
func WithDeck(deck *poker.Deck) Option {
	return func(e *Engine) { e.deck = deck }
}

// NewEngine creates an engine for the given session and player agent
func NewEngine(session *Session, agent Agent, opts ...Option) *Engine {
	e := &Engine{
		session: session,
		agent:   agent,
		ante:    DefaultAnte,
		bus:     NewEventBus(),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = randutil.New(time.Now().UnixNano())
	}
	if e.policy == nil {
		e.policy = NewPolicy(e.rng, DefaultPolicyConfig())
	}
	return e
}

// EventBus returns the bus hand transitions are published to
func (e *Engine) EventBus() *EventBus {
	return e.bus
}

// Session returns the session the engine plays for
func (e *Engine) Session() *Session {
	return e.session
}

// HandResult describes a completed hand
type HandResult struct {
	HandNum int
	Winner  Seat // meaningless when Tied
	Tied    bool
	ByFold  bool
	Pot     int // pot size at payout
}

// PlayHand runs one complete hand: antes, deal, pre-draw betting, draw,
// post-draw betting and showdown. A fold in either round ends the hand
// immediately with the pot already paid out.
func (e *Engine) PlayHand() (*HandResult, error) {
	e.beginHand()

	if result, err := e.runRound(PreDraw); result != nil || err != nil {
		return result, err
	}

	if err := e.drawPhase(); err != nil {
		return nil, err
	}

	if result, err := e.runRound(PostDraw); result != nil || err != nil {
		return result, err
	}

	return e.showdown(), nil
}

func (e *Engine) beginHand() {
	e.session.postAntes(e.ante)
	if e.deck == nil {
		e.deck = poker.NewDeck(e.rng)
	}
	e.playerHand = poker.Hand(e.deck.Deal(HandSize))
	e.opponentHand = poker.Hand(e.deck.Deal(HandSize))

	e.logger.Debug("hand started",
		"hand", e.session.HandNum(),
		"pot", e.session.Pot(),
		"playerBank", e.session.Bank(SeatPlayer),
		"opponentBank", e.session.Bank(SeatOpponent))

	e.bus.Publish(HandStartEvent{
		HandNum:      e.session.HandNum(),
		Ante:         e.ante,
		Pot:          e.session.Pot(),
		PlayerBank:   e.session.Bank(SeatPlayer),
		OpponentBank: e.session.Bank(SeatOpponent),
		PlayerHand:   e.playerHand,
		timestamp:    time.Now(),
	})
}

// runRound drives one betting round to a terminal state. It returns a
// non-nil HandResult when a fold ended the hand.
func (e *Engine) runRound(stage Stage) (*HandResult, error) {
	round := NewRound(e.session, stage)

	potBefore := e.session.Pot()
	for round.State() == AwaitingAction {
		seat := round.Turn()
		potBefore = e.session.Pot()

		var decision Decision
		if seat == SeatPlayer {
			var err error
			decision, err = e.agent.Act(e.roundView(round), round.ValidActions())
			if err != nil {
				return nil, fmt.Errorf("player action: %w", err)
			}
		} else {
			decision = e.policy.Decide(stage, e.opponentHand, !round.Raised(),
				round.ToCall(), e.session.Bank(SeatOpponent), e.session.Pot())
		}

		paid, err := round.Apply(decision.Action, decision.Amount)
		if err != nil {
			e.logger.Debug("rejected action",
				"seat", seat, "action", decision.Action, "amount", decision.Amount, "error", err)
			if seat == SeatPlayer {
				// boundary re-prompts; round state is untouched
				continue
			}
			// substitute a legal fallback for the opponent
			decision = fallbackDecision(round)
			if paid, err = round.Apply(decision.Action, decision.Amount); err != nil {
				return nil, fmt.Errorf("opponent fallback action: %w", err)
			}
		}

		e.logger.Debug("action applied",
			"stage", stage, "seat", seat, "action", decision.Action, "paid", paid,
			"pot", e.session.Pot(), "toCall", round.ToCall())

		e.bus.Publish(PlayerActionEvent{
			Seat:      seat,
			Stage:     stage,
			Action:    decision.Action,
			Amount:    decision.Amount,
			Paid:      paid,
			Pot:       e.session.Pot(),
			timestamp: time.Now(),
		})
	}

	if winner, ok := round.FoldWinner(); ok {
		return e.endHand(winner, false, true, potBefore), nil
	}

	e.bus.Publish(RoundCompleteEvent{Stage: stage, Pot: e.session.Pot(), timestamp: time.Now()})
	return nil, nil
}

func (e *Engine) roundView(round *Round) RoundView {
	return RoundView{
		Stage:    round.Stage(),
		Hand:     e.playerHand,
		ToCall:   round.ToCall(),
		Pot:      e.session.Pot(),
		Bank:     e.session.Bank(SeatPlayer),
		OppBank:  e.session.Bank(SeatOpponent),
		CanRaise: !round.Raised(),
	}
}

// fallbackDecision is the legal substitute applied when the policy proposes
// something the round rejects: call when facing a bet, otherwise check.
func fallbackDecision(round *Round) Decision {
	if round.ToCall() > 0 {
		return Decision{Action: Call}
	}
	return Decision{Action: Check}
}

func (e *Engine) drawPhase() error {
	discards, err := e.agent.ChooseDiscards(e.playerHand)
	if err != nil {
		return fmt.Errorf("player discards: %w", err)
	}
	e.playerHand = e.exchange(e.playerHand, discards)
	e.bus.Publish(DrawEvent{
		Seat:      SeatPlayer,
		Discarded: len(discards),
		Hand:      e.playerHand,
		timestamp: time.Now(),
	})

	oppDiscards := e.policy.ChooseDiscards(e.opponentHand)
	e.opponentHand = e.exchange(e.opponentHand, oppDiscards)
	e.bus.Publish(DrawEvent{
		Seat:      SeatOpponent,
		Discarded: len(oppDiscards),
		timestamp: time.Now(),
	})

	e.logger.Debug("draw complete",
		"playerDiscards", len(discards), "opponentDiscards", len(oppDiscards))
	return nil
}

// exchange removes the cards at the given 0-based indexes and deals
// replacements from the deck
func (e *Engine) exchange(hand poker.Hand, indexes []int) poker.Hand {
	sorted := make([]int, len(indexes))
	copy(sorted, indexes)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	for _, i := range sorted {
		if i < 0 || i >= len(hand) {
			continue
		}
		hand = append(hand[:i], hand[i+1:]...)
	}
	return append(hand, e.deck.Deal(HandSize-len(hand))...)
}

func (e *Engine) showdown() *HandResult {
	playerStrength := poker.Evaluate(e.playerHand)
	opponentStrength := poker.Evaluate(e.opponentHand)
	cmp := poker.Compare(playerStrength, opponentStrength)

	e.bus.Publish(ShowdownEvent{
		PlayerHand:       e.playerHand,
		OpponentHand:     e.opponentHand,
		PlayerStrength:   playerStrength,
		OpponentStrength: opponentStrength,
		Result:           cmp,
		Pot:              e.session.Pot(),
		timestamp:        time.Now(),
	})

	pot := e.session.Pot()
	switch {
	case cmp > 0:
		return e.endHand(SeatPlayer, false, false, pot)
	case cmp < 0:
		return e.endHand(SeatOpponent, false, false, pot)
	default:
		return e.endHand(SeatPlayer, true, false, pot)
	}
}

// endHand pays out the pot (a fold has already paid it inside the round) and
// publishes the hand end. pot is the pot size at payout.
func (e *Engine) endHand(winner Seat, tied, byFold bool, pot int) *HandResult {
	if tied {
		e.session.splitPot()
	} else if !byFold {
		e.session.awardPot(winner)
	}

	result := &HandResult{
		HandNum: e.session.HandNum(),
		Winner:  winner,
		Tied:    tied,
		ByFold:  byFold,
		Pot:     pot,
	}

	e.deck = nil

	e.logger.Debug("hand complete",
		"hand", result.HandNum, "winner", result.Winner, "tied", tied, "byFold", byFold,
		"playerBank", e.session.Bank(SeatPlayer), "opponentBank", e.session.Bank(SeatOpponent))

	e.bus.Publish(HandEndEvent{
		HandNum:      result.HandNum,
		Winner:       winner,
		Tied:         tied,
		ByFold:       byFold,
		Pot:          result.Pot,
		PlayerBank:   e.session.Bank(SeatPlayer),
		OpponentBank: e.session.Bank(SeatOpponent),
		timestamp:    time.Now(),
	})

	return result
}
