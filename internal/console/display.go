package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/drawpoker/internal/game"
)

// Display renders game events to the console. It is purely observational:
// it subscribes to the engine's event bus and never feeds back into state.
type Display struct {
	out    io.Writer
	styles Styles
}

// NewDisplay creates a display writing to out
func NewDisplay(out io.Writer, styles Styles) *Display {
	return &Display{out: out, styles: styles}
}

// HandleEvent renders a single game event
func (d *Display) HandleEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.HandStartEvent:
		fmt.Fprintln(d.out)
		fmt.Fprintln(d.out, d.styles.Info.Render(strings.Repeat("=", 50)))
		fmt.Fprintln(d.out, d.styles.Showdown.Render(fmt.Sprintf("Hand #%d", e.HandNum)))

	case game.PlayerActionEvent:
		d.renderAction(e)

	case game.DrawEvent:
		if e.Seat == game.SeatPlayer {
			fmt.Fprintf(d.out, "You draw %d: %s\n", e.Discarded, renderHand(d.styles, e.Hand))
		} else {
			fmt.Fprintf(d.out, "Opponent draws %d cards.\n", e.Discarded)
		}

	case game.ShowdownEvent:
		fmt.Fprintf(d.out, "Your hand: %s (%s)\n", renderHand(d.styles, e.PlayerHand), e.PlayerStrength)
		fmt.Fprintf(d.out, "Opponent's hand: %s (%s)\n", renderHand(d.styles, e.OpponentHand), e.OpponentStrength)
		switch {
		case e.Result > 0:
			fmt.Fprintln(d.out, d.styles.Success.Render("You win the pot!"))
		case e.Result < 0:
			fmt.Fprintln(d.out, d.styles.Error.Render("Opponent wins the pot."))
		default:
			fmt.Fprintln(d.out, d.styles.Showdown.Render("It's a tie. Pot is split."))
		}

	case game.HandEndEvent:
		if e.ByFold {
			if e.Winner == game.SeatPlayer {
				fmt.Fprintln(d.out, d.styles.Success.Render(fmt.Sprintf("You take the pot ($%d).", e.Pot)))
			} else {
				fmt.Fprintln(d.out, d.styles.Error.Render(fmt.Sprintf("Opponent takes the pot ($%d).", e.Pot)))
			}
		}
		fmt.Fprintf(d.out, "Bankrolls - You: $%d | Opponent: $%d\n", e.PlayerBank, e.OpponentBank)
	}
}

func (d *Display) renderAction(e game.PlayerActionEvent) {
	you := e.Seat == game.SeatPlayer

	switch e.Action {
	case game.Check:
		d.say(you, "You check.", "Opponent checks.")
	case game.Bet:
		d.say(you,
			fmt.Sprintf("You bet $%d.", e.Paid),
			fmt.Sprintf("Opponent bets $%d.", e.Paid))
	case game.Call:
		d.say(you,
			fmt.Sprintf("You call $%d.", e.Paid),
			fmt.Sprintf("Opponent calls $%d.", e.Paid))
	case game.Raise:
		d.say(you,
			fmt.Sprintf("You raise $%d.", e.Amount),
			fmt.Sprintf("Opponent raises $%d.", e.Amount))
	case game.Fold:
		d.say(you, "You fold.", "Opponent folds.")
	}
}

func (d *Display) say(you bool, playerLine, opponentLine string) {
	if you {
		fmt.Fprintln(d.out, playerLine)
	} else {
		fmt.Fprintln(d.out, opponentLine)
	}
}
