// Package hatparse parses the conventional IDA-style AOB signature
// syntax ("48 8B 05 ?? ?? ?? ?? 90") into a sigscan.Signature. The core
// engine never needs this — a Signature can always be built by hand — but
// every caller that reads a pattern from a config file, a CLI flag or a
// cheat-table string needs some way to get there, so this supplements the
// spec's engine-only scope.
package hatparse

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/coregx/sigscan"
)

// ParseError reports a malformed token at a specific position in the
// input text, in the style of nfa/error.go's wrapped-error-struct
// convention: the offset lets a caller point a user at the exact token
// that failed, rather than just "parse failed somewhere".
type ParseError struct {
	Offset int    // token index, not byte offset, within the input
	Token  string // the offending token verbatim
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("hatparse: token %d (%q): %s", e.Offset, e.Token, e.Reason)
}

// Parse tokenizes text on whitespace and converts each token into a
// sigscan.Element: a two-hex-digit byte, or one of "?"/"??" as a
// wildcard. A single "?" is accepted as shorthand for a whole-byte
// wildcard, matching the convention most AOB tables actually use even
// though it denotes one byte, not one nibble.
func Parse(text string) (sigscan.Signature, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, &ParseError{Offset: 0, Token: "", Reason: "empty pattern"}
	}

	sig := make(sigscan.Signature, len(tokens))
	for i, tok := range tokens {
		el, err := parseToken(tok)
		if err != nil {
			return nil, &ParseError{Offset: i, Token: tok, Reason: err.Error()}
		}
		sig[i] = el
	}
	return sig, nil
}

func parseToken(tok string) (sigscan.Element, error) {
	if tok == "?" || tok == "??" {
		return sigscan.Wildcard(), nil
	}
	if len(tok) != 2 {
		return sigscan.Element{}, fmt.Errorf("expected a 2-digit hex byte or '?'/'??', got %d characters", len(tok))
	}
	decoded, err := hex.DecodeString(tok)
	if err != nil {
		return sigscan.Element{}, fmt.Errorf("invalid hex byte: %w", err)
	}
	return sigscan.Byte(decoded[0]), nil
}
