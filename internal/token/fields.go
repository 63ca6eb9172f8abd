// Package token scans text into word spans for the suggester.
package token

// Span is one whitespace-delimited word. Start and End are rune
// offsets (half-open) so span arithmetic survives multi-byte text;
// Word aliases the scanned string, no copies are made.
type Span struct {
	Start int
	End   int
	Word  string
}

// Fields scans s into word spans, splitting on space, tab, CR and LF.
// ZERO copies, 1 slice alloc.
func Fields(s string) []Span {
	// Capacity hint: assume an average 5-byte word plus one space.
	hint := len(s)/6 + 1
	spans := make([]Span, 0, hint)

	runeIdx := 0
	start, startByte := -1, 0
	for i, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			if start >= 0 {
				spans = append(spans, Span{Start: start, End: runeIdx, Word: s[startByte:i]})
				start = -1
			}
		default:
			if start < 0 {
				start, startByte = runeIdx, i
			}
		}
		runeIdx++
	}
	if start >= 0 {
		spans = append(spans, Span{Start: start, End: runeIdx, Word: s[startByte:]})
	}
	return spans
}
