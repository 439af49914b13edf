package game

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

// scriptedAgent feeds a fixed sequence of decisions and discard choices,
// returning io.EOF when the script runs out.
type scriptedAgent struct {
	decisions []Decision
	discards  [][]int
}

func (a *scriptedAgent) Act(view RoundView, valid []ValidAction) (Decision, error) {
	if len(a.decisions) == 0 {
		return Decision{}, io.EOF
	}
	d := a.decisions[0]
	a.decisions = a.decisions[1:]
	return d, nil
}

func (a *scriptedAgent) ChooseDiscards(hand poker.Hand) ([]int, error) {
	if len(a.discards) == 0 {
		return nil, nil
	}
	d := a.discards[0]
	a.discards = a.discards[1:]
	return d, nil
}

type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) HandleEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) types() []EventType {
	types := make([]EventType, len(r.events))
	for i, e := range r.events {
		types[i] = e.EventType()
	}
	return types
}

func newTestEngine(t *testing.T, agent Agent, deck *poker.Deck) (*Engine, *Session, *eventRecorder) {
	t.Helper()
	session := NewSession(DefaultStartingBank)
	recorder := &eventRecorder{}
	engine := NewEngine(session, agent,
		WithRNG(randutil.New(1)),
		WithDeck(deck))
	engine.EventBus().Subscribe(recorder)
	return engine, session, recorder
}

func TestPlayHandLosingShowdown(t *testing.T) {
	// junk for the player, trips for the opponent, nobody draws
	deck := poker.NewStackedDeck(poker.MustParseCards("2h7c9dJhKc 5s5d5c8hQd")...)
	agent := &scriptedAgent{
		decisions: []Decision{
			{Action: Check},
			{Action: Call},
			{Action: Call},
		},
		discards: [][]int{nil},
	}
	engine, session, recorder := newTestEngine(t, agent, deck)

	result, err := engine.PlayHand()
	require.NoError(t, err)

	// antes 5+5, opponent bets 2 pre-draw and 3 post-draw, both called
	assert.Equal(t, &HandResult{HandNum: 1, Winner: SeatOpponent, Pot: 20}, result)
	assert.Equal(t, 40, session.Bank(SeatPlayer))
	assert.Equal(t, 60, session.Bank(SeatOpponent))
	assert.Equal(t, 0, session.Pot())
	assert.Equal(t, 100, chipTotal(session))

	for _, e := range recorder.events {
		if rc, ok := e.(RoundCompleteEvent); ok && rc.Stage == PreDraw {
			assert.Equal(t, 14, rc.Pot)
		}
	}

	assert.Equal(t, []EventType{
		EventTypeHandStart,
		EventTypePlayerAction, // player checks
		EventTypePlayerAction, // opponent bets 2
		EventTypePlayerAction, // player calls
		EventTypeRoundComplete,
		EventTypeDraw,
		EventTypeDraw,
		EventTypePlayerAction, // opponent bets 3
		EventTypePlayerAction, // player calls
		EventTypeRoundComplete,
		EventTypeShowdown,
		EventTypeHandEnd,
	}, recorder.types())
}

func TestPlayHandFoldEndsImmediately(t *testing.T) {
	deck := poker.NewStackedDeck(poker.MustParseCards("2h7c9dJhKc 5s5d5c8hQd")...)
	agent := &scriptedAgent{
		decisions: []Decision{
			{Action: Check},
			{Action: Fold},
		},
	}
	engine, session, recorder := newTestEngine(t, agent, deck)

	result, err := engine.PlayHand()
	require.NoError(t, err)

	assert.Equal(t, &HandResult{HandNum: 1, Winner: SeatOpponent, ByFold: true, Pot: 12}, result)
	assert.Equal(t, 45, session.Bank(SeatPlayer))
	assert.Equal(t, 55, session.Bank(SeatOpponent))
	assert.Equal(t, 100, chipTotal(session))

	types := recorder.types()
	assert.Equal(t, EventTypeHandEnd, types[len(types)-1])
	assert.NotContains(t, types, EventTypeDraw)
	assert.NotContains(t, types, EventTypeShowdown)
	assert.NotContains(t, types, EventTypeRoundComplete)
}

func TestPlayHandSplitPot(t *testing.T) {
	// identical two pair on both sides, nobody draws
	deck := poker.NewStackedDeck(poker.MustParseCards("AhAcKhKc9s AsAdKsKd9h")...)
	agent := &scriptedAgent{
		decisions: []Decision{
			{Action: Check},
			{Action: Call},
		},
		discards: [][]int{nil},
	}
	engine, session, _ := newTestEngine(t, agent, deck)

	result, err := engine.PlayHand()
	require.NoError(t, err)

	assert.True(t, result.Tied)
	assert.False(t, result.ByFold)
	assert.Equal(t, 14, result.Pot)
	assert.Equal(t, 50, session.Bank(SeatPlayer))
	assert.Equal(t, 50, session.Bank(SeatOpponent))
}

func TestPlayHandDrawExchangesCards(t *testing.T) {
	// player draws three to trip aces, the opponent keeps a pair of threes
	// and folds to the post-draw bet
	deck := poker.NewStackedDeck(poker.MustParseCards(
		"2h7c9dJhKc 3c3d8s9hQh AhAsAd 2s4c6d")...)
	agent := &scriptedAgent{
		decisions: []Decision{
			{Action: Check},
			{Action: Bet, Amount: 5},
		},
		discards: [][]int{{0, 1, 2}},
	}
	engine, session, recorder := newTestEngine(t, agent, deck)

	result, err := engine.PlayHand()
	require.NoError(t, err)

	assert.Equal(t, &HandResult{HandNum: 1, Winner: SeatPlayer, ByFold: true, Pot: 15}, result)
	assert.Equal(t, 55, session.Bank(SeatPlayer))
	assert.Equal(t, 45, session.Bank(SeatOpponent))

	var draws []DrawEvent
	for _, e := range recorder.events {
		if d, ok := e.(DrawEvent); ok {
			draws = append(draws, d)
		}
	}
	require.Len(t, draws, 2)
	assert.Equal(t, SeatPlayer, draws[0].Seat)
	assert.Equal(t, 3, draws[0].Discarded)
	assert.Equal(t, poker.MustParseCards("JhKc AhAsAd"), draws[0].Hand)
	assert.Equal(t, SeatOpponent, draws[1].Seat)
	assert.Equal(t, 3, draws[1].Discarded)
	assert.Nil(t, draws[1].Hand, "opponent cards stay hidden")
}

func TestPlayHandRepromptsOnIllegalDecision(t *testing.T) {
	deck := poker.NewStackedDeck(poker.MustParseCards("2h7c9dJhKc 5s5d5c8hQd")...)
	agent := &scriptedAgent{
		decisions: []Decision{
			{Action: Check},
			{Action: Check}, // illegal facing the bet, engine asks again
			{Action: Fold},
		},
	}
	engine, session, _ := newTestEngine(t, agent, deck)

	result, err := engine.PlayHand()
	require.NoError(t, err)
	assert.True(t, result.ByFold)
	assert.Empty(t, agent.decisions)
	assert.Equal(t, 100, chipTotal(session))
}

func TestPlayHandPlayerErrorPropagates(t *testing.T) {
	deck := poker.NewStackedDeck(poker.MustParseCards("2h7c9dJhKc 5s5d5c8hQd")...)
	engine, _, _ := newTestEngine(t, &scriptedAgent{}, deck)

	_, err := engine.PlayHand()
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPlayHandCountsHands(t *testing.T) {
	session := NewSession(DefaultStartingBank)
	agent := &scriptedAgent{
		decisions: []Decision{{Action: Check}, {Action: Fold}, {Action: Check}, {Action: Fold}},
	}
	engine := NewEngine(session, agent,
		WithRNG(randutil.New(1)),
		WithDeck(poker.NewStackedDeck(poker.MustParseCards("2h7c9dJhKc 5s5d5c8hQd")...)))

	first, err := engine.PlayHand()
	require.NoError(t, err)

	// a fresh deck must be stacked per hand when not shuffling
	WithDeck(poker.NewStackedDeck(poker.MustParseCards("2h7c9dJhKc 5s5d5c8hQd")...))(engine)

	second, err := engine.PlayHand()
	require.NoError(t, err)

	assert.Equal(t, 1, first.HandNum)
	assert.Equal(t, 2, second.HandNum)
}
