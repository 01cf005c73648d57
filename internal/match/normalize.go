package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for name matching.
// The normalization pipeline:
//  1. Tokenize CamelCase.
//  2. Case-fold to lower.
//  3. Strip separators (_, -, spaces).
//
// Examples: "UserID" -> "userid", "user_id" -> "userid", "userId" -> "userid".
func NormalizeIdent(s string) string {
	tokens := tokenizeCamelCase(s)

	joined := strings.Join(tokens, "")
	joined = strings.ToLower(joined)

	return stripSeparators(joined)
}

// SameIdent reports whether two identifiers refer to the same name after
// normalization.
func SameIdent(a, b string) bool {
	return NormalizeIdent(a) == NormalizeIdent(b)
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			// Boundary: lower->Upper, or end of an all-caps run (HTTPServer).
			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower) {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// stripSeparators removes underscores, dashes, and spaces.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}

		return r
	}, s)
}
