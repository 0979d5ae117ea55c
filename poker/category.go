package poker

// Category enumerates the nine hand categories ordered from weakest to strongest.
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

// Categories lists every category from weakest to strongest.
var Categories = [...]Category{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush,
}

// Severity returns the category strength, HighCard=0 through StraightFlush=8.
func (c Category) Severity() uint8 {
	return uint8(c)
}

// String returns a human-readable category name.
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

// profile holds the rank and suit features every classification needs,
// computed in one pass over the cards.
type profile struct {
	counts   [13]uint8 // indexed by Rank.index()
	distinct int
	maxCount uint8
	flush    bool
	straight bool
	wheel    bool
}

func (h Hand) profile() profile {
	var p profile
	for _, c := range h.cards {
		if !c.Rank.Valid() || !c.Suit.Valid() {
			// Only the zero Hand gets here: leave every feature unset.
			return p
		}
	}
	p.flush = true
	for i, c := range h.cards {
		n := p.counts[c.Rank.index()] + 1
		p.counts[c.Rank.index()] = n
		if n == 1 {
			p.distinct++
		}
		if n > p.maxCount {
			p.maxCount = n
		}
		if i > 0 && c.Suit != h.cards[0].Suit {
			p.flush = false
		}
	}
	if p.distinct != HandSize {
		return p
	}

	low, high := -1, -1
	for i, n := range p.counts {
		if n == 0 {
			continue
		}
		if low < 0 {
			low = i
		}
		high = i
	}
	// Five distinct ranks: either they span exactly five slots, or the top two
	// are Five and Ace (A-2-3-4-5).
	p.wheel = high == Ace.index() && secondHighest(p.counts) == Five.index()
	p.straight = high-low == 4 || p.wheel
	return p
}

func secondHighest(counts [13]uint8) int {
	seen := 0
	for i := len(counts) - 1; i >= 0; i-- {
		if counts[i] == 0 {
			continue
		}
		seen++
		if seen == 2 {
			return i
		}
	}
	return -1
}

func (p profile) category() Category {
	switch {
	case p.straight && p.flush:
		return StraightFlush
	case p.distinct == 2 && p.maxCount == 4:
		return FourOfAKind
	case p.distinct == 2 && p.maxCount == 3:
		return FullHouse
	case p.flush:
		return Flush
	case p.straight:
		return Straight
	case p.distinct == 3 && p.maxCount == 3:
		return ThreeOfAKind
	case p.distinct == 3 && p.maxCount == 2:
		return TwoPair
	case p.distinct == 4:
		return Pair
	default:
		return HighCard
	}
}

// Category classifies the hand.
func (h Hand) Category() Category {
	return h.profile().category()
}
