package poker

import (
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/randutil"
)

// toOracle converts a hand for github.com/paulhankin/poker, which numbers
// ranks Ace=1..King=13 and suits from Club=0.
func toOracle(t *testing.T, h Hand) [5]ph.Card {
	t.Helper()
	var out [5]ph.Card
	for i, c := range h.Cards() {
		r := c.Rank.Value()
		if c.Rank == Ace {
			r = 1
		}
		oc, err := ph.MakeCard(ph.Suit(c.Suit-Clubs), ph.Rank(r))
		require.NoError(t, err)
		out[i] = oc
	}
	return out
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func TestCompareMatchesIndependentEvaluator(t *testing.T) {
	t.Parallel()
	deck := NewDeck(randutil.New(20240601))

	for i := 0; i < 5000; i++ {
		if deck.CardsRemaining() < 2*HandSize {
			deck.Shuffle()
		}
		a, _ := deck.DealHand()
		b, _ := deck.DealHand()

		oa, ob := toOracle(t, a), toOracle(t, b)
		want := sign(int(ph.Eval5(&oa)) - int(ph.Eval5(&ob)))
		require.Equal(t, want, a.Compare(b), "%s vs %s", a, b)
	}
}
