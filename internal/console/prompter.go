package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

// maxDiscards is the most cards a player may exchange in the draw
const maxDiscards = 3

// Prompter is the human input collaborator: it renders the player's view,
// reads menu selections and amounts, and re-prompts until the input is valid
// so the engine never receives malformed data. It implements game.Agent.
type Prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	styles Styles
}

// NewPrompter creates a prompter reading from in and writing to out
func NewPrompter(in io.Reader, out io.Writer, styles Styles) *Prompter {
	return &Prompter{
		in:     bufio.NewScanner(in),
		out:    out,
		styles: styles,
	}
}

// Act prompts for a betting decision. Only choices drawn from valid are
// offered, so the returned decision is legal by construction.
func (p *Prompter) Act(view game.RoundView, valid []game.ValidAction) (game.Decision, error) {
	fmt.Fprintf(p.out, "Your hand: %s\n", renderHand(p.styles, view.Hand))
	fmt.Fprintf(p.out, "Bankrolls - You: $%d | Opponent: $%d | Pot: $%d\n",
		view.Bank, view.OppBank, view.Pot)
	if view.ToCall > 0 {
		fmt.Fprintln(p.out, p.styles.Prompt.Render(fmt.Sprintf("Opponent bet $%d.", view.ToCall)))
	}

	menu := orderMenu(valid)
	for {
		labels := make([]string, len(menu))
		nums := make([]string, len(menu))
		for i, va := range menu {
			labels[i] = fmt.Sprintf("[%d] %s", i+1, menuLabel(va))
			nums[i] = strconv.Itoa(i + 1)
		}
		fmt.Fprintf(p.out, "Options: %s\n", strings.Join(labels, ", "))

		line, err := p.readLine(fmt.Sprintf("Choose action (%s): ", strings.Join(nums, "/")))
		if err != nil {
			return game.Decision{}, err
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > len(menu) {
			fmt.Fprintln(p.out, p.styles.Error.Render("Invalid choice."))
			continue
		}

		selected := menu[choice-1]
		switch selected.Action {
		case game.Bet, game.Raise:
			verb := "bet"
			if selected.Action == game.Raise {
				verb = "raise"
			}
			amount, err := p.readAmount(
				fmt.Sprintf("Enter %s amount (%d to %d): ", verb, selected.Min, selected.Max),
				selected.Max)
			if err != nil {
				return game.Decision{}, err
			}
			return game.Decision{Action: selected.Action, Amount: amount}, nil
		default:
			return game.Decision{Action: selected.Action, Amount: selected.Min}, nil
		}
	}
}

// ChooseDiscards prompts for the draw-phase card exchange and returns 0-based
// indexes: space separated 1-based input, deduplicated, at most three, with 0
// keeping the whole hand.
func (p *Prompter) ChooseDiscards(hand poker.Hand) ([]int, error) {
	fmt.Fprintf(p.out, "Your hand: %s\n", renderHand(p.styles, hand))
	fmt.Fprintln(p.out, "Enter space-separated card indexes to discard (1 is the first index). Enter 0 to keep all.")

	for {
		line, err := p.readLine("Discard indexes: ")
		if err != nil {
			return nil, err
		}

		indexes, err := parseDiscardInput(line, len(hand))
		if err != nil {
			fmt.Fprintln(p.out, p.styles.Error.Render(err.Error()))
			continue
		}
		return indexes, nil
	}
}

// Confirm asks a yes/no question; enter and y both mean yes
func (p *Prompter) Confirm(question string) bool {
	line, err := p.readLine(p.styles.Prompt.Render(question) + " (Enter or y/n): ")
	if err != nil {
		return false
	}
	switch strings.ToLower(line) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}

// readAmount reads a positive whole number no greater than maxValue,
// re-prompting with a corrective message until it gets one
func (p *Prompter) readAmount(prompt string, maxValue int) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, p.styles.Error.Render("Please enter a positive whole number."))
			continue
		}
		if value <= 0 {
			fmt.Fprintln(p.out, p.styles.Error.Render("Number must be above 0."))
			continue
		}
		if value > maxValue {
			fmt.Fprintln(p.out, p.styles.Error.Render(fmt.Sprintf("Maximum allowed is %d.", maxValue)))
			continue
		}
		return value, nil
	}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// orderMenu arranges valid actions in presentation order: continuing actions
// first, fold last
func orderMenu(valid []game.ValidAction) []game.ValidAction {
	order := []game.Action{game.Check, game.Bet, game.Call, game.Raise, game.Fold}
	menu := make([]game.ValidAction, 0, len(valid))
	for _, action := range order {
		for _, va := range valid {
			if va.Action == action {
				menu = append(menu, va)
			}
		}
	}
	return menu
}

func menuLabel(va game.ValidAction) string {
	switch va.Action {
	case game.Check:
		return "Check"
	case game.Bet:
		return "Bet"
	case game.Call:
		return fmt.Sprintf("Call $%d", va.Min)
	case game.Raise:
		return "Raise"
	default:
		return "Fold"
	}
}

// parseDiscardInput parses the draw-phase discard entry: space-separated
// 1-based indexes, "0" alone to keep all. Duplicates collapse preserving
// order. Returns 0-based indexes.
func parseDiscardInput(input string, handSize int) ([]int, error) {
	if input == "" {
		return nil, fmt.Errorf("Enter 0 to keep all or specify indexes.")
	}

	parts := strings.Fields(input)
	if len(parts) == 1 && parts[0] == "0" {
		return []int{}, nil
	}

	indexes := make([]int, 0, len(parts))
	for _, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("Please enter numbers only.")
		}
		indexes = append(indexes, idx)
	}

	for _, idx := range indexes {
		if idx <= 0 {
			return nil, fmt.Errorf("All card indexes must be above 0.")
		}
		if idx > handSize {
			return nil, fmt.Errorf("Card indexes must be between 1 and %d.", handSize)
		}
	}

	seen := make(map[int]bool)
	clean := make([]int, 0, len(indexes))
	for _, idx := range indexes {
		if !seen[idx] {
			seen[idx] = true
			clean = append(clean, idx-1)
		}
	}
	if len(clean) > maxDiscards {
		return nil, fmt.Errorf("You can discard at most %d cards.", maxDiscards)
	}
	return clean, nil
}

// renderHand renders a hand with red/black suit coloring
func renderHand(styles Styles, hand poker.Hand) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		if c.IsRed() {
			parts[i] = styles.RedCard.Render(c.String())
		} else {
			parts[i] = styles.Card.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}
