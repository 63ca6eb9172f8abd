package medit

// Result is JSON-serialisable as-is.
type Result struct {
	Original     string `json:"original"`     // input text
	Corrected    string `json:"corrected"`    // best suggestion applied per flag
	EditDistance int    `json:"editDistance"` // Distance(original, corrected)
	CharCount    int    `json:"charCount"`    // UTF-8 rune length
	TokenCount   int    `json:"tokenCount"`   // whitespace-separated words
	ErrorCount   int    `json:"errorCount"`   // number of flagged words
	Flags        []Flag `json:"flags"`        // nil if nothing was flagged
}

// Flag marks one word that is absent from the dictionary.
type Flag struct {
	Start     int      `json:"start"`     // rune offsets
	End       int      `json:"end"`       // rune offsets
	Origin    string   `json:"origin"`    // flagged word
	Suggest   []string `json:"suggest"`   // closest dictionary words, best first
	Distances []int    `json:"distances"` // Distance(origin, suggest[i])
}

// Suggestion pairs one dictionary word with its distance to the query.
type Suggestion struct {
	Word     string `json:"word"`
	Distance int    `json:"distance"`
}
