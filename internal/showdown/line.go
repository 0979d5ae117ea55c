// Package showdown ranks lines of competing poker hands.
//
// A line holds one or more hands separated by '|'. Evaluating it yields every
// hand whose ranking key equals the best key on the line, plus the category
// they share.
package showdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/showdown/poker"
)

// HandSeparator splits competing hands on one line.
const HandSeparator = "|"

// ErrNoHands is returned for a line without any hand text.
var ErrNoHands = errors.New("no hands on line")

// ParseFunc parses one hand. poker.ParseHand and poker.ParseHandStrict both fit.
type ParseFunc func(string) (poker.Hand, error)

// LineError reports a failure on an input line.
type LineError struct {
	Line int // 1-based line number, 0 when unknown
	Hand int // 1-based hand index on the line, 0 when not hand specific
	Err  error
}

func (e *LineError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Hand > 0 {
		fmt.Fprintf(&b, "hand %d: ", e.Hand)
	}
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Result is the outcome of ranking one line.
type Result struct {
	Number   int    // 1-based line number in the input
	Input    string // line as read, without the trailing newline
	Hands    []poker.Hand
	Winners  []int // indexes into Hands, in input order
	Category poker.Category
	Err      error
}

// WinningHands returns the co-winning hands in input order.
func (r Result) WinningHands() []poker.Hand {
	out := make([]poker.Hand, 0, len(r.Winners))
	for _, i := range r.Winners {
		out = append(out, r.Hands[i])
	}
	return out
}

// Key returns the ranking key shared by the winners.
func (r Result) Key() poker.Key {
	if len(r.Winners) == 0 {
		return poker.Key{}
	}
	return r.Hands[r.Winners[0]].Key()
}

// IsTie reports whether more than one hand shares the win.
func (r Result) IsTie() bool {
	return len(r.Winners) > 1
}

// ParseLine splits a line on '|' and parses each trimmed segment as a hand.
func ParseLine(line string, parse ParseFunc) ([]poker.Hand, error) {
	if parse == nil {
		parse = poker.ParseHand
	}
	if strings.TrimSpace(line) == "" {
		return nil, &LineError{Err: ErrNoHands}
	}

	segments := strings.Split(line, HandSeparator)
	hands := make([]poker.Hand, 0, len(segments))
	for i, seg := range segments {
		h, err := parse(strings.TrimSpace(seg))
		if err != nil {
			return nil, &LineError{Hand: i + 1, Err: err}
		}
		hands = append(hands, h)
	}
	return hands, nil
}

// Evaluate parses a line and picks its winners. On failure the returned Result
// still carries Input and Err.
func Evaluate(line string, parse ParseFunc) Result {
	res := Result{Input: line}
	hands, err := ParseLine(line, parse)
	if err != nil {
		res.Err = err
		return res
	}
	res.Hands = hands
	res.Winners = poker.Winners(hands)
	best, _ := poker.Max(hands...)
	res.Category = best.Category()
	return res
}
