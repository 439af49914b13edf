package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/randutil"
)

func TestDeckDealsFiftyTwoUniqueCards(t *testing.T) {
	deck := NewDeck(randutil.New(1))
	require.Equal(t, 52, deck.CardsRemaining())

	seen := make(map[Card]bool)
	for _, card := range deck.Deal(52) {
		assert.False(t, seen[card], "card %s dealt twice", card)
		seen[card] = true
	}
	assert.Len(t, seen, 52)
	assert.Equal(t, 0, deck.CardsRemaining())
}

func TestDeckDealTracksRemaining(t *testing.T) {
	deck := NewDeck(randutil.New(7))

	hand := deck.Deal(5)
	assert.Len(t, hand, 5)
	assert.Equal(t, 47, deck.CardsRemaining())

	more := deck.Deal(2)
	assert.Len(t, more, 2)
	assert.Equal(t, 45, deck.CardsRemaining())
}

func TestDeckSameSeedSameOrder(t *testing.T) {
	a := NewDeck(randutil.New(42))
	b := NewDeck(randutil.New(42))
	assert.Equal(t, a.Deal(52), b.Deal(52))
}

func TestDeckDifferentSeedsDiffer(t *testing.T) {
	a := NewDeck(randutil.New(1))
	b := NewDeck(randutil.New(2))
	assert.NotEqual(t, a.Deal(52), b.Deal(52))
}

func TestStackedDeckDealsInOrder(t *testing.T) {
	cards := MustParseCards("AsKdQh")
	deck := NewStackedDeck(cards...)

	assert.Equal(t, []Card(cards[:2]), deck.Deal(2))
	assert.Equal(t, []Card(cards[2:]), deck.Deal(1))
}
