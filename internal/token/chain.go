package token

import "strings"

// ChainSeparator delimits the states of a compound token.
const ChainSeparator = "|"

// IsChain reports whether tok is a compound token encoding a sequence of
// simulated states.
func IsChain(tok string) bool {
	return strings.Contains(tok, ChainSeparator)
}

// Effective reduces a token chain to its single effective token: the last
// non-empty element wins. The same reduction is applied before both the
// precharge and postcharge gates, so a chain behaves identically no
// matter how many times it is resolved.
func Effective(tok string) string {
	if !IsChain(tok) {
		return tok
	}
	parts := strings.Split(tok, ChainSeparator)
	for i := len(parts) - 1; i >= 0; i-- {
		if p := strings.TrimSpace(parts[i]); p != "" {
			return p
		}
	}
	return tok
}
