package parse

import "fmt"

// Kind classifies why a color string was rejected.
type Kind int

const (
	KindEmptyInput Kind = iota
	KindUnrecognizedFormat
	KindMalformedNumber
	KindOutOfRange
	KindIncompleteGrammar
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty input"
	case KindUnrecognizedFormat:
		return "unrecognized format"
	case KindMalformedNumber:
		return "malformed number"
	case KindOutOfRange:
		return "out of range"
	case KindIncompleteGrammar:
		return "incomplete grammar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseError describes a rejected color string. Input is the string
// that failed, Grammar the representation being attempted (empty when
// no grammar structurally matched), and Detail the offending part.
type ParseError struct {
	Kind    Kind
	Input   string
	Grammar string
	Detail  string
}

// Error names the offending input and the grammar that rejected it.
func (e *ParseError) Error() string {
	switch e.Kind {
	case KindEmptyInput:
		return "empty color string"
	case KindUnrecognizedFormat:
		return fmt.Sprintf("unrecognized color format %q (tried hex, rgb, hsl, hsv and named colors)", e.Input)
	default:
		return fmt.Sprintf("cannot parse %q as %s: %s: %s", e.Input, e.Grammar, e.Kind, e.Detail)
	}
}
