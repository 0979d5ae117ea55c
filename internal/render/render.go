// Package render writes ranked lines as plain text, styled text or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lox/showdown/internal/showdown"
)

// Format names an output format.
type Format string

const (
	Text   Format = "text"
	Styled Format = "styled"
	JSON   Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, Styled, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, styled or json)", s)
	}
}

// Writer writes one result per call.
type Writer interface {
	Write(res showdown.Result) error
}

// New returns a writer for format. color only affects Styled.
func New(format Format, w io.Writer, color ColorMode) Writer {
	switch format {
	case Styled:
		return NewStyledWriter(w, color)
	case JSON:
		return &jsonWriter{enc: json.NewEncoder(w)}
	default:
		return &textWriter{w: w}
	}
}

// TextLine renders a result the way the line ranker always has:
//
//	<input>, Winner: <hand>[, <hand>...], Rank: <category>
//
// Failed lines render as "<input>, Error: <message>".
func TextLine(res showdown.Result) string {
	if res.Err != nil {
		return fmt.Sprintf("%s, Error: %v", res.Input, res.Err)
	}
	return fmt.Sprintf("%s, Winner: %s, Rank: %s",
		res.Input,
		showdown.FormatHands(res.WinningHands(), ", "),
		res.Category,
	)
}

type textWriter struct {
	w io.Writer
}

func (t *textWriter) Write(res showdown.Result) error {
	_, err := io.WriteString(t.w, TextLine(res)+"\n")
	return err
}

// Record is the JSON shape of a result.
type Record struct {
	Line     int      `json:"line,omitempty"`
	Input    string   `json:"input"`
	Hands    []string `json:"hands,omitempty"`
	Winners  []int    `json:"winners,omitempty"`
	Category string   `json:"category,omitempty"`
	Score    uint64   `json:"score,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// NewRecord converts a result for JSON output.
func NewRecord(res showdown.Result) Record {
	rec := Record{Line: res.Number, Input: res.Input}
	if res.Err != nil {
		rec.Error = res.Err.Error()
		return rec
	}
	rec.Hands = make([]string, len(res.Hands))
	for i, h := range res.Hands {
		rec.Hands[i] = h.String()
	}
	rec.Winners = res.Winners
	rec.Category = res.Category.String()
	rec.Score = res.Key().Uint64()
	return rec
}

type jsonWriter struct {
	enc *json.Encoder
}

func (j *jsonWriter) Write(res showdown.Result) error {
	return j.enc.Encode(NewRecord(res))
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
