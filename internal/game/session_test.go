package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionPostAntes(t *testing.T) {
	s := NewSession(50)

	s.postAntes(5)
	assert.Equal(t, 1, s.HandNum())
	assert.Equal(t, 10, s.Pot())
	assert.Equal(t, 45, s.Bank(SeatPlayer))
	assert.Equal(t, 45, s.Bank(SeatOpponent))

	s.postAntes(5)
	assert.Equal(t, 2, s.HandNum())
}

func TestSessionPayCappedAtBank(t *testing.T) {
	s := NewSession(3)

	paid := s.pay(SeatPlayer, 10)
	assert.Equal(t, 3, paid)
	assert.Equal(t, 0, s.Bank(SeatPlayer))
	assert.Equal(t, 3, s.Pot())
}

func TestSessionAwardPot(t *testing.T) {
	s := NewSession(50)
	s.postAntes(5)

	won := s.awardPot(SeatOpponent)
	assert.Equal(t, 10, won)
	assert.Equal(t, 0, s.Pot())
	assert.Equal(t, 45, s.Bank(SeatPlayer))
	assert.Equal(t, 55, s.Bank(SeatOpponent))
}

func TestSessionSplitPotOddChip(t *testing.T) {
	s := NewSession(50)
	s.pay(SeatPlayer, 4)
	s.pay(SeatOpponent, 3)

	s.splitPot()
	assert.Equal(t, 0, s.Pot())
	assert.Equal(t, 49, s.Bank(SeatPlayer))
	assert.Equal(t, 51, s.Bank(SeatOpponent))
	assert.Equal(t, 100, chipTotal(s))
}

func TestSessionFinished(t *testing.T) {
	s := NewSession(5)
	assert.False(t, s.Finished())

	s.pay(SeatOpponent, 5)
	s.awardPot(SeatPlayer)
	assert.True(t, s.Finished())
}
