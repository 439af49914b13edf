package poker

import "math/bits"

// Category enumerates the poker hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category description.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Strength is the totally ordered value of an evaluated five-card hand.
// The category occupies the top bits and up to five tie-break ranks pack
// into four bits each below it, so plain integer comparison is exactly the
// lexicographic (category, tie-breakers) comparison.
type Strength uint32

// NewStrength packs a category and its tie-break ranks, highest-priority first.
func NewStrength(cat Category, tiebreaks ...Rank) Strength {
	s := uint32(cat) << 20
	shift := 16
	for _, r := range tiebreaks {
		s |= uint32(r) << shift
		shift -= 4
	}
	return Strength(s)
}

// Category returns the hand category this strength belongs to.
func (s Strength) Category() Category {
	return Category(s >> 20)
}

// TieBreaks unpacks the tie-break ranks, highest-priority first.
func (s Strength) TieBreaks() []Rank {
	var ranks []Rank
	for shift := 16; shift >= 0; shift -= 4 {
		r := Rank(s >> shift & 0xf)
		if r == 0 {
			break
		}
		ranks = append(ranks, r)
	}
	return ranks
}

// String returns the category description, e.g. "Full House".
func (s Strength) String() string {
	return s.Category().String()
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 for an exact tie.
func Compare(a, b Strength) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Evaluate maps a five-card hand to its Strength. It is a total function:
// the input is assumed to be exactly five valid, distinct cards.
func Evaluate(h Hand) Strength {
	var counts [15]int
	var rankMask uint16
	flush := true
	for i, c := range h {
		counts[c.Rank]++
		rankMask |= 1 << uint(c.Rank)
		if i > 0 && c.Suit != h[0].Suit {
			flush = false
		}
	}

	var quad, trips Rank
	var pairs, singles []Rank
	for r := Ace; r >= Two; r-- {
		switch counts[r] {
		case 4:
			quad = r
		case 3:
			trips = r
		case 2:
			pairs = append(pairs, r)
		case 1:
			singles = append(singles, r)
		}
	}

	straightHigh := straightHigh(rankMask)

	switch {
	case straightHigh > 0 && flush:
		return NewStrength(StraightFlush, straightHigh)
	case quad > 0:
		return NewStrength(FourOfAKind, quad, singles[0])
	case trips > 0 && len(pairs) == 1:
		return NewStrength(FullHouse, trips, pairs[0])
	case flush:
		return NewStrength(Flush, singles...)
	case straightHigh > 0:
		return NewStrength(Straight, straightHigh)
	case trips > 0:
		return NewStrength(ThreeOfAKind, trips, singles[0], singles[1])
	case len(pairs) == 2:
		return NewStrength(TwoPair, pairs[0], pairs[1], singles[0])
	case len(pairs) == 1:
		return NewStrength(Pair, pairs[0], singles[0], singles[1], singles[2])
	default:
		return NewStrength(HighCard, singles...)
	}
}

// straightHigh returns the high rank of a straight present in the rank mask,
// Five for the wheel, or 0 when there is no straight. The wheel is the only
// case where the ace plays low, and it ranks below a six-high straight.
func straightHigh(mask uint16) Rank {
	const wheel = 1<<uint(Ace) | 1<<uint(Five) | 1<<uint(Four) | 1<<uint(Three) | 1<<uint(Two)

	// Bitwise cascade finds five consecutive ranks in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		return Rank(bits.Len16(seq) - 1 + 4)
	}
	if mask&wheel == wheel {
		return Five
	}
	return 0
}
