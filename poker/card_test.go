package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		input string
		rank  Rank
		suit  Suit
	}{
		{"As", Ace, Spades},
		{"Th", Ten, Hearts},
		{"2c", Two, Clubs},
		{"qd", Queen, Diamonds},
		{"9S", Nine, Spades},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			card, err := ParseCard(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.rank, card.Rank)
			assert.Equal(t, tt.suit, card.Suit)
		})
	}
}

func TestParseCardRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "A", "Asd", "1s", "Xh", "Ax"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCard(input)
			assert.Error(t, err)
		})
	}
}

func TestParseCards(t *testing.T) {
	concat, err := ParseCards("AsKdQh")
	require.NoError(t, err)
	spaced, err := ParseCards("As Kd Qh")
	require.NoError(t, err)

	assert.Len(t, concat, 3)
	assert.Equal(t, concat, spaced)
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", Card{Rank: Ace, Suit: Spades}.String())
	assert.Equal(t, "T♥", Card{Rank: Ten, Suit: Hearts}.String())
	assert.Equal(t, "2♣", Card{Rank: Two, Suit: Clubs}.String())
}

func TestHandString(t *testing.T) {
	hand := MustParseCards("AsKdQh")
	assert.Equal(t, "A♠ K♦ Q♥", hand.String())
}

func TestSuitIsRed(t *testing.T) {
	assert.True(t, Hearts.IsRed())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Spades.IsRed())
	assert.False(t, Clubs.IsRed())
}
