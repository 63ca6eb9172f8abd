package medit

import (
	"encoding/json"

	"github.com/Alfex4936/medit/internal/lev"
)

// Costs holds the three operation weights of the edit distance.
type Costs struct {
	Insert  int `json:"insert"`
	Delete  int `json:"delete"`
	Replace int `json:"replace"`
}

// DefaultCosts is the standard model: unit insert and delete, a
// replace as expensive as both together.
var DefaultCosts = Costs{Insert: 1, Delete: 1, Replace: 2}

// Valid reports whether every weight is non-negative.
func (c Costs) Valid() bool {
	return c.Insert >= 0 && c.Delete >= 0 && c.Replace >= 0
}

// UnmarshalJSON decodes a possibly partial weights object: any field
// absent from the JSON keeps its DefaultCosts value.
func (c *Costs) UnmarshalJSON(data []byte) error {
	var raw struct {
		Insert  *int `json:"insert"`
		Delete  *int `json:"delete"`
		Replace *int `json:"replace"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = DefaultCosts
	if raw.Insert != nil {
		c.Insert = *raw.Insert
	}
	if raw.Delete != nil {
		c.Delete = *raw.Delete
	}
	if raw.Replace != nil {
		c.Replace = *raw.Replace
	}
	return nil
}

// Distance returns the weighted edit distance between source and
// target, comparing Unicode code points.
func (c Costs) Distance(source, target string) int {
	return lev.Runes([]rune(source), []rune(target), c.Insert, c.Delete, c.Replace)
}

// DistanceBytes is like Distance but compares raw bytes.
func (c Costs) DistanceBytes(source, target string) int {
	return lev.Bytes(source, target, c.Insert, c.Delete, c.Replace)
}
