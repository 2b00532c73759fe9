package utils

// SanitizeQuotes returns s with a backslash inserted immediately before
// every literal single-quote character. Quote positions are collected first
// and processed right to left so earlier insertions do not shift the
// indices of quotes that have not been handled yet.
//
// No other characters are altered and the function never fails. It is not
// idempotent: applying it twice escapes the backslashes introduced by the
// first pass as well as the original quotes.
//
// This is a purely textual transform with no knowledge of SQL grammar.
// Queries in this service are parameter-bound, so SanitizeQuotes is no
// longer part of query construction; it survives for callers that embed
// user text into single-quoted literals (see the /hello/{name} handler).
func SanitizeQuotes(s string) string {
	indexes := make([]int, 0, 4)
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			indexes = append(indexes, i)
		}
	}
	if len(indexes) == 0 {
		return s
	}

	b := []byte(s)
	for i := len(indexes) - 1; i >= 0; i-- {
		idx := indexes[i]
		b = append(b[:idx], append([]byte{'\\'}, b[idx:]...)...)
	}

	return string(b)
}
