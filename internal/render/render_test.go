package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/showdown"
)

func TestTextLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		line string
		want string
	}{
		{
			"2C 3C 6C 9C AC|KD AS 2C 6D QS",
			"2C 3C 6C 9C AC|KD AS 2C 6D QS, Winner: 2C 3C 6C 9C AC, Rank: Flush",
		},
		{
			"KD AS 2C 6D QS|KH AC 2D 6S QH",
			"KD AS 2C 6D QS|KH AC 2D 6S QH, Winner: KD AS 2C 6D QS, KH AC 2D 6S QH, Rank: High Card",
		},
		{
			"6C 6S 6H 8D 8S|3C 3H 3S KD KS",
			"6C 6S 6H 8D 8S|3C 3H 3S KD KS, Winner: 6C 6S 6H 8D 8S, Rank: Full House",
		},
		{
			"2C 3C 6C 9C",
			"2C 3C 6C 9C, Error: hand 1: wrong length: got 4 cards, want 5",
		},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, TextLine(showdown.Evaluate(tc.line, nil)))
	}
}

func TestTextWriter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := New(Text, &buf, ColorNever)
	require.NoError(t, w.Write(showdown.Evaluate("3S 5S 4S 7S 6S", nil)))
	assert.Equal(t, "3S 5S 4S 7S 6S, Winner: 3S 5S 4S 7S 6S, Rank: Straight Flush\n", buf.String())
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := New(JSON, &buf, ColorNever)

	res := showdown.Evaluate("2C 3C 6C 9C AC|KD AS 2C 6D QS|2H 3H 6H 9H AH", nil)
	res.Number = 7
	require.NoError(t, w.Write(res))
	require.NoError(t, w.Write(showdown.Evaluate("9P", nil)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, 7, rec.Line)
	assert.Equal(t, []int{0, 2}, rec.Winners)
	assert.Equal(t, "Flush", rec.Category)
	assert.Equal(t, res.Key().Uint64(), rec.Score)
	assert.Len(t, rec.Hands, 3)
	assert.Empty(t, rec.Error)

	var bad Record
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &bad))
	assert.Contains(t, bad.Error, "invalid suit")
	assert.Empty(t, bad.Hands)
}

func TestStyledWriter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := New(Styled, &buf, ColorNever)
	res := showdown.Evaluate("2H 3H 6H 9H AH|KD AS 2C 6D QS|2C 3C 6C 9C AC", nil)
	res.Number = 3
	require.NoError(t, w.Write(res))

	out := buf.String()
	assert.Contains(t, out, "2♥ 3♥ 6♥ 9♥ A♥")
	assert.Contains(t, out, "K♦ A♠ 2♣ 6♦ Q♠")
	assert.Contains(t, out, "Flush (2-way tie)")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestParseFormatAndColor(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"text", "styled", "json"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)

	for _, s := range []string{"auto", "always", "never"} {
		_, err := ParseColorMode(s)
		assert.NoError(t, err)
	}
	_, err = ParseColorMode("sometimes")
	assert.Error(t, err)
}
