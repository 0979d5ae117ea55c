package poker

// Rank is a card face value. The zero value is not a valid rank.
type Rank uint8

const (
	Two Rank = iota + 1
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from lowest to highest.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Value returns the numeric strength of the rank, Two=2 through Ace=14.
// Returns 0 for an invalid rank.
func (r Rank) Value() int {
	switch r {
	case Two:
		return 2
	case Three:
		return 3
	case Four:
		return 4
	case Five:
		return 5
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	case Ten:
		return 10
	case Jack:
		return 11
	case Queen:
		return 12
	case King:
		return 13
	case Ace:
		return 14
	default:
		return 0
	}
}

// index maps a valid rank onto 0..12 for fixed-size count tables.
func (r Rank) index() int {
	return r.Value() - 2
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r.Value() != 0
}

// String returns the single-character rank code.
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// ParseRank parses a rank code from 23456789TJQKA. Codes are case-sensitive.
func ParseRank(c byte) (Rank, error) {
	switch c {
	case '2':
		return Two, nil
	case '3':
		return Three, nil
	case '4':
		return Four, nil
	case '5':
		return Five, nil
	case '6':
		return Six, nil
	case '7':
		return Seven, nil
	case '8':
		return Eight, nil
	case '9':
		return Nine, nil
	case 'T':
		return Ten, nil
	case 'J':
		return Jack, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	case 'A':
		return Ace, nil
	default:
		return 0, ErrInvalidRank
	}
}

// Suit is a card suit. Suits have no order; only equality is meaningful.
type Suit uint8

const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

// Suits lists the four suits.
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the single-character suit code.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit glyph used by the styled renderer.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit parses a suit code from CDHS. Codes are case-sensitive.
func ParseSuit(c byte) (Suit, error) {
	switch c {
	case 'C':
		return Clubs, nil
	case 'D':
		return Diamonds, nil
	case 'H':
		return Hearts, nil
	case 'S':
		return Spades, nil
	default:
		return 0, ErrInvalidSuit
	}
}
