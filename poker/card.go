package poker

import "fmt"

// Card is a playing card. Cards are plain values and never change after parsing.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// ParseCard parses a card code such as "AS" or "TD": a rank character followed
// by a suit character. Anything after the second character is ignored.
func ParseCard(s string) (Card, error) {
	if len(s) == 0 {
		return Card{}, ErrNoRankFound
	}
	rank, err := ParseRank(s[0])
	if err != nil {
		return Card{}, err
	}
	if len(s) == 1 {
		return Card{}, ErrNoSuitFound
	}
	suit, err := ParseSuit(s[1])
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCardStrict is ParseCard but rejects tokens longer than two characters.
func ParseCardStrict(s string) (Card, error) {
	c, err := ParseCard(s)
	if err != nil {
		return Card{}, err
	}
	if len(s) > 2 {
		return Card{}, ErrTrailingInput
	}
	return c, nil
}

// MustParseCard parses a card and panics on error (for tests and literals)
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card '%s': %v", s, err))
	}
	return c
}

// validate reports which half of a constructed card is out of range.
func (c Card) validate() error {
	if !c.Rank.Valid() {
		return ErrInvalidRank
	}
	if !c.Suit.Valid() {
		return ErrInvalidSuit
	}
	return nil
}

// String returns the two-character card code, e.g. "AS".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
