package medit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/Alfex4936/medit/internal/net"
)

// maxDictBytes caps remote dictionary bodies.
const maxDictBytes = 8 << 20

// Dict is a word list the suggester ranks candidates from.
type Dict struct {
	Words []string `json:"words"`
}

// NewDict creates a Dict from the given words.
func NewDict(words ...string) *Dict {
	return &Dict{Words: words}
}

// LoadDict reads a JSON file of the form {"words": ["kitten", ...]}.
func LoadDict(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Dict
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("medit: dict %s: %w", path, err)
	}
	return &d, nil
}

// FetchDict retrieves the same JSON shape over HTTP.
func FetchDict(ctx context.Context, url string) (*Dict, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	req, err := net.NewGET(ctx, url)
	if err != nil {
		return nil, err
	}
	resp, err := net.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("medit: dict fetch %s: %s", url, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDictBytes))
	if err != nil {
		return nil, err
	}
	var d Dict
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("medit: dict fetch %s: %w", url, err)
	}
	return &d, nil
}

// set builds the lookup map: words trimmed, blanks dropped.
func (d *Dict) set() map[string]struct{} {
	if d == nil {
		return nil
	}
	m := make(map[string]struct{}, len(d.Words))
	for _, raw := range d.Words {
		if w := strings.TrimSpace(raw); w != "" {
			m[w] = struct{}{}
		}
	}
	return m
}
