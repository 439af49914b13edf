package game

// Session owns the bankrolls, the pot and the hand counter for one sitting.
// It is created once at program start and lives until a bank empties or the
// player declines to continue. All chip movement goes through pay, awardPot
// and splitPot so the bank+pot total is conserved.
type Session struct {
	banks   [2]int
	pot     int
	handNum int
}

// NewSession creates a session with both seats holding startingBank chips
func NewSession(startingBank int) *Session {
	return &Session{banks: [2]int{startingBank, startingBank}}
}

// Bank returns the chips held by the given seat
func (s *Session) Bank(seat Seat) int {
	return s.banks[seat]
}

// Pot returns the chips currently in the pot
func (s *Session) Pot() int {
	return s.pot
}

// HandNum returns the number of the hand in progress (1-based)
func (s *Session) HandNum() int {
	return s.handNum
}

// Finished reports whether either bank has emptied
func (s *Session) Finished() bool {
	return s.banks[SeatPlayer] <= 0 || s.banks[SeatOpponent] <= 0
}

// pay moves chips from a seat's bank into the pot, capped at the bank so a
// bank never goes negative
func (s *Session) pay(seat Seat, amount int) int {
	paid := min(amount, s.banks[seat])
	s.banks[seat] -= paid
	s.pot += paid
	return paid
}

// postAntes starts a new hand: bumps the hand counter and moves the ante
// from each bank into the pot
func (s *Session) postAntes(ante int) {
	s.handNum++
	s.pay(SeatPlayer, ante)
	s.pay(SeatOpponent, ante)
}

// awardPot pays the whole pot to one seat
func (s *Session) awardPot(seat Seat) int {
	won := s.pot
	s.banks[seat] += won
	s.pot = 0
	return won
}

// splitPot divides a tied pot, the player taking half rounded down and the
// opponent the remainder
func (s *Session) splitPot() {
	half := s.pot / 2
	s.banks[SeatPlayer] += half
	s.banks[SeatOpponent] += s.pot - half
	s.pot = 0
}
