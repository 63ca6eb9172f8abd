// Package parse decodes batch input files into distance pairs.
package parse

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Alfex4936/medit/medit"
)

// Pairs decodes b into source/target pairs. Input starting with '['
// is treated as a JSON array of {"source","target"} objects, anything
// else as TSV lines of exactly two tab-separated fields. Blank lines
// are skipped.
func Pairs(b []byte) ([]medit.Pair, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		return jsonPairs(trimmed)
	}
	return tsvPairs(b)
}

func jsonPairs(b []byte) ([]medit.Pair, error) {
	var pairs []medit.Pair
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&pairs); err != nil {
		return nil, fmt.Errorf("parse: invalid pair JSON: %w", err)
	}
	return pairs, nil
}

func tsvPairs(b []byte) ([]medit.Pair, error) {
	var pairs []medit.Pair
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("parse: line %d: want 2 tab-separated fields, got %d", line, len(fields))
		}
		pairs = append(pairs, medit.Pair{Source: fields[0], Target: fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return pairs, nil
}
