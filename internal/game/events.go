package game

import (
	"time"

	"github.com/lox/drawpoker/poker"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeHandStart     EventType = "hand_start"
	EventTypePlayerAction  EventType = "player_action"
	EventTypeRoundComplete EventType = "round_complete"
	EventTypeDraw          EventType = "draw"
	EventTypeShowdown      EventType = "showdown"
	EventTypeHandEnd       EventType = "hand_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a hand
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// EventHandler receives published game events. Handlers are purely
// observational and must not feed back into game state.
type EventHandler interface {
	HandleEvent(event GameEvent)
}

// EventBus fans game events out to subscribers synchronously
type EventBus struct {
	handlers []EventHandler
}

// NewEventBus creates an empty event bus
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers a handler for all future events
func (b *EventBus) Subscribe(handler EventHandler) {
	b.handlers = append(b.handlers, handler)
}

// Publish delivers an event to every subscriber in order
func (b *EventBus) Publish(event GameEvent) {
	for _, h := range b.handlers {
		h.HandleEvent(event)
	}
}

// HandStartEvent is published after antes are posted and hands dealt
type HandStartEvent struct {
	HandNum      int
	Ante         int
	Pot          int
	PlayerBank   int
	OpponentBank int
	PlayerHand   poker.Hand
	timestamp    time.Time
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }
func (e HandStartEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published when a seat completes a betting action
type PlayerActionEvent struct {
	Seat      Seat
	Stage     Stage
	Action    Action
	Amount    int // bet or raise size from the decision; zero otherwise
	Paid      int
	Pot       int
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// RoundCompleteEvent is published when a betting round resolves without a fold
type RoundCompleteEvent struct {
	Stage     Stage
	Pot       int
	timestamp time.Time
}

func (e RoundCompleteEvent) EventType() EventType { return EventTypeRoundComplete }
func (e RoundCompleteEvent) Timestamp() time.Time { return e.timestamp }

// DrawEvent is published after a seat has exchanged cards. Hand is only
// populated for the player seat; the opponent's cards stay hidden.
type DrawEvent struct {
	Seat      Seat
	Discarded int
	Hand      poker.Hand
	timestamp time.Time
}

func (e DrawEvent) EventType() EventType { return EventTypeDraw }
func (e DrawEvent) Timestamp() time.Time { return e.timestamp }

// ShowdownEvent is published when both hands are revealed, before the pot
// moves
type ShowdownEvent struct {
	PlayerHand       poker.Hand
	OpponentHand     poker.Hand
	PlayerStrength   poker.Strength
	OpponentStrength poker.Strength
	Result           int // 1 player wins, -1 opponent wins, 0 split
	Pot              int
	timestamp        time.Time
}

func (e ShowdownEvent) EventType() EventType { return EventTypeShowdown }
func (e ShowdownEvent) Timestamp() time.Time { return e.timestamp }

// HandEndEvent is published once the pot has been paid out
type HandEndEvent struct {
	HandNum      int
	Winner       Seat
	Tied         bool
	ByFold       bool
	Pot          int
	PlayerBank   int
	OpponentBank int
	timestamp    time.Time
}

func (e HandEndEvent) EventType() EventType { return EventTypeHandEnd }
func (e HandEndEvent) Timestamp() time.Time { return e.timestamp }
