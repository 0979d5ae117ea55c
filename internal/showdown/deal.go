package showdown

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/lox/showdown/poker"
)

// MaxHandsPerTable is how many five-card hands one deck can supply.
const MaxHandsPerTable = 52 / poker.HandSize

// Dealer produces random input lines. Each line is dealt from a freshly
// shuffled deck, so no card repeats within a line.
type Dealer struct {
	deck *poker.Deck
}

// NewDealer creates a dealer drawing from rng.
func NewDealer(rng *rand.Rand) *Dealer {
	return &Dealer{deck: poker.NewDeck(rng)}
}

// Table deals n hands for one line.
func (d *Dealer) Table(n int) ([]poker.Hand, error) {
	if n < 1 || n > MaxHandsPerTable {
		return nil, fmt.Errorf("hands per table must be between 1 and %d, got %d", MaxHandsPerTable, n)
	}
	d.deck.Shuffle()
	hands := make([]poker.Hand, n)
	for i := range hands {
		hands[i], _ = d.deck.DealHand()
	}
	return hands, nil
}

// Line deals n hands and joins them in the input line format.
func (d *Dealer) Line(n int) (string, error) {
	hands, err := d.Table(n)
	if err != nil {
		return "", err
	}
	return FormatHands(hands, HandSeparator), nil
}

// FormatHands renders hands joined by sep.
func FormatHands(hands []poker.Hand, sep string) string {
	parts := make([]string, len(hands))
	for i, h := range hands {
		parts[i] = h.String()
	}
	return strings.Join(parts, sep)
}
