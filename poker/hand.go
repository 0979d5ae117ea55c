// Package poker parses, classifies and orders five-card poker hands.
//
// Every value in the package is immutable once built, so hands, cards and
// keys may be shared between goroutines freely.
package poker

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards in every hand.
const HandSize = 5

// Hand is an immutable five-card poker hand. Cards keep the order they were
// parsed in; ranking never depends on that order.
//
// The zero Hand holds no cards. It ranks as an empty High Card, below every
// hand built by NewHand or ParseHand.
type Hand struct {
	cards [HandSize]Card
}

// NewHand builds a hand from exactly five valid cards. A card with an
// out-of-range rank or suit is reported as a *ParseError at its position.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d cards, want %d", ErrWrongLength, len(cards), HandSize)
	}
	for i, c := range cards {
		if err := c.validate(); err != nil {
			return Hand{}, &ParseError{Position: i + 1, Token: c.String(), Err: err}
		}
	}
	var h Hand
	copy(h.cards[:], cards)
	return h, nil
}

// ParseHand parses five space-separated card codes, e.g. "2C 3D 4H 5S 6C".
//
// Every token is parsed before the card count is checked, so a malformed token
// is reported even when the count is also wrong.
func ParseHand(s string) (Hand, error) {
	return parseHand(s, ParseCard)
}

// ParseHandStrict is ParseHand using ParseCardStrict for each token.
func ParseHandStrict(s string) (Hand, error) {
	return parseHand(s, ParseCardStrict)
}

func parseHand(s string, parse func(string) (Card, error)) (Hand, error) {
	tokens := strings.Split(s, " ")
	cards := make([]Card, 0, len(tokens))
	for i, tok := range tokens {
		c, err := parse(tok)
		if err != nil {
			return Hand{}, &ParseError{Position: i + 1, Token: tok, Err: err}
		}
		cards = append(cards, c)
	}
	return NewHand(cards...)
}

// MustParseHand parses a hand and panics on error (for tests and literals)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// Cards returns a copy of the hand's cards in their original order.
func (h Hand) Cards() [HandSize]Card {
	return h.cards
}

// String returns the five card codes separated by single spaces.
func (h Hand) String() string {
	var b strings.Builder
	b.Grow(HandSize*3 - 1)
	for i, c := range h.cards {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
