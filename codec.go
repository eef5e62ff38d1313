package bintree

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strconv"
	"strings"
)

// Codec converts between level-order literals and trees with values of type T.
//
// Parse reads a single value from its textual form. Format writes a value;
// if it is nil, values are written with their default format.
//
// Literals have the form
//
//	[ elem, elem, … ]
//
// where every elem is either `null` or a value literal understood by Parse.
// White space around brackets, commas and elements is ignored.
type Codec[T comparable] struct {
	Parse  func(string) (T, error)
	Format func(T) string
}

// NewCodec creates a codec from a parse and a format function.
// format may be nil.
func NewCodec[T comparable](parse func(string) (T, error), format func(T) string) *Codec[T] {
	return &Codec[T]{Parse: parse, Format: format}
}

// Predefined codecs.
var (
	// Ints reads and writes decimal integers.
	Ints = NewCodec(strconv.Atoi, strconv.Itoa)
	// Int64s reads and writes decimal 64-bit integers.
	Int64s = NewCodec(parseInt64, formatInt64)
	// Float64s reads and writes floating point numbers.
	Float64s = NewCodec(parseFloat64, formatFloat64)
	// Strings reads bare or double-quoted strings. Strings which could not be
	// read back in their bare form are written quoted.
	Strings = NewCodec(parseString, formatString)
)

// ParseText reads a level-order literal into a sequence of optional values.
//
// An empty literal "[]" yields an empty sequence. If the literal is not
// enclosed in brackets, or if any element is neither `null` nor a valid
// value, ParseText returns an error wrapping ErrFormat and no sequence.
func (c *Codec[T]) ParseText(s string) ([]Slot[T], error) {
	if c == nil || c.Parse == nil {
		return nil, ErrIllegalArguments
	}
	lit := strings.TrimSpace(s)
	if len(lit) < 2 || lit[0] != '[' || lit[len(lit)-1] != ']' {
		tracer().Debugf("tree literal not enclosed in brackets: %q", s)
		return nil, fmt.Errorf("%w: missing enclosing brackets", ErrFormat)
	}
	inner := strings.TrimSpace(lit[1 : len(lit)-1])
	if inner == "" {
		return []Slot[T]{}, nil
	}
	elems := splitElements(inner)
	seq := make([]Slot[T], 0, len(elems))
	for i, e := range elems {
		tok := strings.TrimSpace(e)
		if tok == nullToken {
			seq = append(seq, Null[T]())
			continue
		}
		v, err := c.Parse(tok)
		if err != nil {
			tracer().Debugf("tree literal: cannot parse element #%d %q", i, tok)
			return nil, fmt.Errorf("%w: element #%d %q: %w", ErrFormat, i, tok, err)
		}
		seq = append(seq, Some(v))
	}
	return seq, nil
}

// Decode builds a tree from a level-order sequence. See function Decode.
func (c *Codec[T]) Decode(seq []Slot[T]) *Node[T] {
	return Decode(seq)
}

// FromString parses a level-order literal and builds the tree it denotes.
//
// The empty literal yields a nil tree and no error. A malformed literal
// yields a nil tree as well, together with an error wrapping ErrFormat.
func (c *Codec[T]) FromString(s string) (*Node[T], error) {
	seq, err := c.ParseText(s)
	if err != nil {
		return nil, err
	}
	return Decode(seq), nil
}

// MustFromString is like FromString, but panics if the literal is malformed.
// It is intended for test fixtures.
func (c *Codec[T]) MustFromString(s string) *Node[T] {
	root, err := c.FromString(s)
	if err != nil {
		panic(err)
	}
	return root
}

// Render returns the canonical level-order literal of a tree.
// The empty tree renders as "[]".
func (c *Codec[T]) Render(root *Node[T]) string {
	if c == nil || c.Format == nil {
		return renderLevelOrder(root, formatDefault[T])
	}
	return renderLevelOrder(root, c.Format)
}

// --- Integer fixtures ------------------------------------------------------

// ParseText reads a level-order literal of integers. See Codec.ParseText.
func ParseText(s string) ([]Slot[int], error) {
	return Ints.ParseText(s)
}

// FromString builds a tree of integers from a level-order literal.
// See Codec.FromString.
func FromString(s string) (*Node[int], error) {
	return Ints.FromString(s)
}

// MustFromString builds a tree of integers from a level-order literal and
// panics if the literal is malformed.
func MustFromString(s string) *Node[int] {
	return Ints.MustFromString(s)
}

// splitElements splits the interior of a literal at commas. Commas within
// double-quoted elements do not count.
func splitElements(inner string) []string {
	var elems []string
	start, quoted, escaped := 0, false, false
	for i := 0; i < len(inner); i++ {
		switch ch := inner[i]; {
		case escaped:
			escaped = false
		case quoted && ch == '\\':
			escaped = true
		case quoted && ch == '"':
			quoted = false
		case ch == '"' && strings.TrimSpace(inner[start:i]) == "":
			quoted = true // quotes only open at the start of an element
		case ch == ',' && !quoted:
			elems = append(elems, inner[start:i])
			start = i + 1
		}
	}
	return append(elems, inner[start:])
}

// --- Value parsers ---------------------------------------------------------

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func formatFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseString(s string) (string, error) {
	if strings.HasPrefix(s, `"`) {
		return strconv.Unquote(s)
	}
	if s == "" {
		return "", fmt.Errorf("empty string value")
	}
	return s, nil
}

func formatString(v string) string {
	if v == "" || v == nullToken || v != strings.TrimSpace(v) ||
		strings.ContainsAny(v, `,[]"`) {
		return strconv.Quote(v)
	}
	return v
}
