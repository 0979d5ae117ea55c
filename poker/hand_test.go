package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHand(t *testing.T) {
	t.Parallel()
	hand, err := ParseHand("2C 2D 6C 9H AS")
	require.NoError(t, err)

	want := [HandSize]Card{
		{Rank: Two, Suit: Clubs},
		{Rank: Two, Suit: Diamonds},
		{Rank: Six, Suit: Clubs},
		{Rank: Nine, Suit: Hearts},
		{Rank: Ace, Suit: Spades},
	}
	assert.Equal(t, want, hand.Cards())
	assert.Equal(t, "2C 2D 6C 9H AS", hand.String())
}

func TestParseHandErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantErr  error
		position int
	}{
		{name: "four cards", input: "2C 2D 6C 9H", wantErr: ErrWrongLength},
		{name: "six cards", input: "2C 2D 6C 9H KS KD", wantErr: ErrWrongLength},
		{name: "empty", input: "", wantErr: ErrNoRankFound, position: 1},
		{name: "invalid rank in five", input: "2C 2D 1C 9H AS", wantErr: ErrInvalidRank, position: 3},
		{name: "invalid suit in four", input: "2C 2D 6C 9P", wantErr: ErrInvalidSuit, position: 4},
		{name: "double space", input: "2C  2D 6C 9H AS", wantErr: ErrNoRankFound, position: 2},
		{name: "missing suit in six", input: "2C 2D 6C 9H KS K", wantErr: ErrNoSuitFound, position: 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseHand(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)

			var pe *ParseError
			if tc.position == 0 {
				assert.False(t, errors.As(err, &pe), "length errors carry no token position")
				return
			}
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.position, pe.Position)
		})
	}
}

func TestParseHandStrict(t *testing.T) {
	t.Parallel()
	_, err := ParseHand("2C 2D 6C 9H ASS")
	require.NoError(t, err)

	_, err = ParseHandStrict("2C 2D 6C 9H ASS")
	assert.ErrorIs(t, err, ErrTrailingInput)
}

func TestNewHand(t *testing.T) {
	t.Parallel()
	_, err := NewHand(MustParseCard("AS"), MustParseCard("KS"))
	assert.ErrorIs(t, err, ErrWrongLength)

	h, err := NewHand(
		MustParseCard("AS"), MustParseCard("KS"), MustParseCard("QS"),
		MustParseCard("JS"), MustParseCard("TS"),
	)
	require.NoError(t, err)
	assert.Equal(t, StraightFlush, h.Category())
}

func TestNewHandRejectsInvalidCards(t *testing.T) {
	t.Parallel()
	valid := []Card{
		MustParseCard("2C"), MustParseCard("3C"), MustParseCard("4C"), MustParseCard("5C"),
	}
	tests := []struct {
		name     string
		card     Card
		position int
		want     error
	}{
		{"zero card first", Card{}, 1, ErrInvalidRank},
		{"rank out of range", Card{Rank: Rank(99), Suit: Spades}, 3, ErrInvalidRank},
		{"suit out of range", Card{Rank: Ace, Suit: Suit(7)}, 5, ErrInvalidSuit},
		{"zero suit", Card{Rank: Ace}, 2, ErrInvalidSuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := make([]Card, 0, HandSize)
			cards = append(cards, valid[:tt.position-1]...)
			cards = append(cards, tt.card)
			cards = append(cards, valid[tt.position-1:]...)

			_, err := NewHand(cards...)
			require.ErrorIs(t, err, tt.want)
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.position, pe.Position)
		})
	}
}

func TestZeroHandRanksBelowEverything(t *testing.T) {
	t.Parallel()
	var zero Hand
	assert.NotPanics(t, func() {
		assert.Equal(t, HighCard, zero.Category())
		assert.Equal(t, Key{}, zero.Key())
	})

	worst := MustParseHand("2C 3D 4H 5S 7C")
	assert.True(t, worst.Beats(zero))
	assert.Equal(t, []int{1}, Winners([]Hand{zero, worst}))
}

func TestHandRoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []string{
		"2C JS 9C 5D 6S",
		"AD 2D 3D 4D 5D",
		"5C 5S KC 5D KS",
		"TC JC QC KC AC",
	} {
		h := MustParseHand(s)
		again, err := ParseHand(h.String())
		require.NoError(t, err)
		assert.Equal(t, h, again)
		assert.True(t, h.Ties(again))
	}
}

func TestMustParseHandPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParseHand("2C 3C") })
	assert.Panics(t, func() { MustParseCard("") })
}
