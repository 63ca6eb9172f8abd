package medit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/Alfex4936/medit/internal/util"
)

// DefaultUnit is the comparison unit used when a request leaves
// "unit" empty: "rune" | "byte".
var DefaultUnit = "rune"

// MaxBodyBytes caps request bodies accepted by the handlers.
var MaxBodyBytes int64 = 1 << 20

// MaxBatchPairs caps how many pairs one /v1/batch request may carry.
var MaxBatchPairs = 10000

// DistanceRequest is the HTTP request body for /v1/distance.
// Source and Target are pointers so that an absent field can be told
// apart from a present-but-empty string: both must be present, both
// may be empty.
type DistanceRequest struct {
	Source    *string `json:"source"`              // required
	Target    *string `json:"target"`              // required
	Unit      string  `json:"unit,omitempty"`      // "rune" (default) | "byte"
	Costs     *Costs  `json:"costs,omitempty"`     // optional weights, default 1/1/2
	Normalize bool    `json:"normalize,omitempty"` // NFC-normalize both inputs first
	Table     bool    `json:"table,omitempty"`     // include the full cost grid
}

// DistanceResponse is the HTTP response body for /v1/distance.
type DistanceResponse struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Unit     string  `json:"unit"`
	Distance int     `json:"distance"`
	Table    [][]int `json:"table,omitempty"`
}

// DistanceHandler handles POST /v1/distance requests.
func DistanceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DistanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Source == nil || req.Target == nil {
		http.Error(w, "Invalid request: source and target are required", http.StatusBadRequest)
		return
	}
	unit, ok := resolveUnit(req.Unit)
	if !ok {
		http.Error(w, fmt.Sprintf("Invalid request: unknown unit %q", req.Unit), http.StatusBadRequest)
		return
	}
	costs, ok := resolveCosts(req.Costs)
	if !ok {
		http.Error(w, "Invalid request: negative operation cost", http.StatusBadRequest)
		return
	}

	source, target := *req.Source, *req.Target
	if req.Normalize {
		source = norm.NFC.String(source)
		target = norm.NFC.String(target)
	}

	resp := DistanceResponse{Source: source, Target: target, Unit: unit}
	if req.Table {
		t, err := tableFor(unit, source, target, costs)
		if err != nil {
			httpStatus := http.StatusBadRequest
			if errors.Is(err, ErrTableTooLarge) {
				httpStatus = http.StatusRequestEntityTooLarge
			}
			http.Error(w, fmt.Sprintf("Table failed: %v", err), httpStatus)
			return
		}
		resp.Table = t.Grid()
		resp.Distance = t.Distance()
	} else if unit == "byte" {
		resp.Distance = costs.DistanceBytes(source, target)
	} else {
		resp.Distance = costs.Distance(source, target)
	}

	writeJSON(w, resp)
}

// BatchRequest is the HTTP request body for /v1/batch.
type BatchRequest struct {
	Pairs   []Pair `json:"pairs"`             // required, may be empty
	Unit    string `json:"unit,omitempty"`    // "rune" (default) | "byte"
	Costs   *Costs `json:"costs,omitempty"`   // optional weights
	Timeout int    `json:"timeout,omitempty"` // seconds, default 8
}

// BatchResponse is the HTTP response body for /v1/batch.
type BatchResponse struct {
	Pairs     int   `json:"pairs"`
	Distances []int `json:"distances"`
}

// BatchHandler handles POST /v1/batch requests.
func BatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req BatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Pairs == nil {
		http.Error(w, "Invalid request: pairs is required", http.StatusBadRequest)
		return
	}
	if len(req.Pairs) > MaxBatchPairs {
		http.Error(w, fmt.Sprintf("Too many pairs: %d > %d", len(req.Pairs), MaxBatchPairs), http.StatusRequestEntityTooLarge)
		return
	}
	unit, ok := resolveUnit(req.Unit)
	if !ok {
		http.Error(w, fmt.Sprintf("Invalid request: unknown unit %q", req.Unit), http.StatusBadRequest)
		return
	}
	costs, ok := resolveCosts(req.Costs)
	if !ok {
		http.Error(w, "Invalid request: negative operation cost", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(req.Timeout))
	defer cancel()

	var (
		distances []int
		err       error
	)
	if unit == "byte" {
		distances, err = BatchDistanceBytes(ctx, req.Pairs, costs)
	} else {
		distances, err = BatchDistance(ctx, req.Pairs, costs)
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Batch failed: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, BatchResponse{Pairs: len(distances), Distances: distances})
}

// ClosestRequest is the HTTP request body for /v1/closest.
type ClosestRequest struct {
	Word        *string  `json:"word"`                   // required
	Words       []string `json:"words,omitempty"`        // inline word list
	Dict        *Dict    `json:"dict,omitempty"`         // user dictionary {"words":[...]}
	DictURL     string   `json:"dict_url,omitempty"`     // remote dictionary JSON
	Limit       int      `json:"limit,omitempty"`        // 0 = no limit
	MaxDistance *int     `json:"max_distance,omitempty"` // absent = no cap, 0 = exact only
	Timeout     int      `json:"timeout,omitempty"`      // seconds, default 8
}

// ClosestResponse is the HTTP response body for /v1/closest.
type ClosestResponse struct {
	Word        string       `json:"word"`
	Suggestions []Suggestion `json:"suggestions"`
}

// ClosestHandler handles POST /v1/closest requests.
func ClosestHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ClosestRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Word == nil {
		http.Error(w, "Invalid request: word is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(req.Timeout))
	defer cancel()

	dict, err := dictFromRequest(ctx, req.Words, req.Dict, req.DictURL)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to load dictionary: %v", err), http.StatusInternalServerError)
		return
	}
	if dict == nil {
		http.Error(w, "Invalid request: no dictionary words given", http.StatusBadRequest)
		return
	}

	maxDistance := -1
	if req.MaxDistance != nil {
		maxDistance = *req.MaxDistance
	}

	writeJSON(w, ClosestResponse{
		Word:        *req.Word,
		Suggestions: Closest(*req.Word, dict, req.Limit, maxDistance),
	})
}

// SuggestRequest is the HTTP request body for /v1/suggest.
type SuggestRequest struct {
	Text    *string  `json:"text"`            // required
	Words   []string `json:"words,omitempty"` // inline word list
	Dict    *Dict    `json:"dict,omitempty"`  // user dictionary {"words":[...]}
	DictURL string   `json:"dict_url,omitempty"`
	Timeout int      `json:"timeout,omitempty"` // seconds, default 8
}

// SuggestHandler handles POST /v1/suggest requests.
func SuggestHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SuggestRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == nil {
		http.Error(w, "Invalid request: text is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(req.Timeout))
	defer cancel()

	dict, err := dictFromRequest(ctx, req.Words, req.Dict, req.DictURL)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to load dictionary: %v", err), http.StatusInternalServerError)
		return
	}
	if dict == nil {
		http.Error(w, "Invalid request: no dictionary words given", http.StatusBadRequest)
		return
	}

	writeJSON(w, SuggestText(*req.Text, dict))
}

// HealthHandler handles GET /health requests.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "medit",
	})
}

// OpenAPIHandler serves the OpenAPI 3.0 spec at GET /openapi.json.
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

// DocsHandler serves the Redoc UI at GET /.
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

/***----- private -----***/

// decodeJSON enforces the body cap and decodes into dst, writing the
// error response itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return false
	}
	http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
	return false
}

func resolveUnit(unit string) (string, bool) {
	switch unit {
	case "":
		return DefaultUnit, true
	case "rune", "byte":
		return unit, true
	}
	return "", false
}

func resolveCosts(c *Costs) (Costs, bool) {
	if c == nil {
		return DefaultCosts, true
	}
	return *c, c.Valid()
}

func tableFor(unit, source, target string, c Costs) (*Table, error) {
	if unit == "byte" {
		return NewTableBytes(source, target, c)
	}
	return NewTable(source, target, c)
}

func requestTimeout(seconds int) time.Duration {
	if seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return 8 * time.Second
}

// dictFromRequest merges the inline words, the request dictionary and
// the remote dictionary. nil means no words came from any source.
func dictFromRequest(ctx context.Context, words []string, d *Dict, url string) (*Dict, error) {
	merged := NewDict(words...)
	if d != nil {
		merged.Words = append(merged.Words, d.Words...)
	}
	if url != "" {
		remote, err := FetchDict(ctx, url)
		if err != nil {
			return nil, err
		}
		merged.Words = append(merged.Words, remote.Words...)
	}
	if len(merged.Words) == 0 {
		return nil, nil
	}
	return merged, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	util.WriteNoEscape(w, v, true)
}

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "medit API",
    "description": "Weighted minimum edit distance REST API (insert 1, delete 1, replace 2)",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/distance": {
      "post": {
        "summary": "Distance",
        "description": "Computes the weighted edit distance between source and target. Both fields are required but may be empty strings.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/DistanceRequest" },
              "examples": {
                "basic": {
                  "value": { "source": "kitten", "target": "sitting" }
                },
                "bytes": {
                  "value": { "source": "résumé", "target": "resume", "unit": "byte" }
                },
                "custom costs": {
                  "value": { "source": "kitten", "target": "sitting", "costs": { "insert": 1, "delete": 1, "replace": 1 } }
                },
                "full table": {
                  "value": { "source": "asudf", "target": "asdfvbd", "table": true }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Computed distance",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/DistanceResponse" },
                "example": { "source": "kitten", "target": "sitting", "unit": "rune", "distance": 5 }
              }
            }
          },
          "400": { "description": "Invalid request (missing field, unknown unit, negative cost, malformed JSON)" },
          "413": { "description": "Request body or cost table too large" }
        }
      }
    },
    "/v1/batch": {
      "post": {
        "summary": "Batch",
        "description": "Computes the distance of every pair, preserving input order.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/BatchRequest" },
              "example": { "pairs": [ { "source": "abc", "target": "abd" }, { "source": "ab", "target": "abc" } ] }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Distances in input order",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/BatchResponse" },
                "example": { "pairs": 2, "distances": [2, 1] }
              }
            }
          },
          "400": { "description": "Invalid request" },
          "413": { "description": "Request body too large or too many pairs" }
        }
      }
    },
    "/v1/closest": {
      "post": {
        "summary": "Closest",
        "description": "Ranks dictionary words by distance to the query word.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/ClosestRequest" },
              "examples": {
                "inline words": {
                  "value": { "word": "recieve", "words": ["receive", "recite", "relieve"], "limit": 2 }
                },
                "remote dictionary": {
                  "value": { "word": "recieve", "dict_url": "https://example.com/words.json" }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Ranked suggestions",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/ClosestResponse" },
                "example": { "word": "recieve", "suggestions": [ { "word": "receive", "distance": 2 } ] }
              }
            }
          },
          "400": { "description": "Invalid request (missing word, no dictionary words)" },
          "500": { "description": "Dictionary fetch failed" }
        }
      }
    },
    "/v1/suggest": {
      "post": {
        "summary": "Suggest",
        "description": "Flags words missing from the dictionary and builds a corrected text from the best suggestions.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/SuggestRequest" },
              "example": { "text": "teh quick brown fox", "words": ["the", "quick", "brown", "fox"] }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Flagged words and corrected text",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Result" },
                "example": {
                  "original": "teh quick brown fox",
                  "corrected": "the quick brown fox",
                  "editDistance": 2,
                  "charCount": 19,
                  "tokenCount": 4,
                  "errorCount": 1,
                  "flags": [
                    { "start": 0, "end": 3, "origin": "teh", "suggest": ["the", "fox", "brown", "quick"], "distances": [2, 6, 8, 8] }
                  ]
                }
              }
            }
          },
          "400": { "description": "Invalid request (missing text, no dictionary words)" },
          "500": { "description": "Dictionary fetch failed" }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": {
          "200": {
            "description": "Service up",
            "content": {
              "application/json": {
                "example": { "status": "ok", "service": "medit" }
              }
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Costs": {
        "type": "object",
        "properties": {
          "insert":  { "type": "integer", "description": "Insertion weight, default 1", "minimum": 0 },
          "delete":  { "type": "integer", "description": "Deletion weight, default 1", "minimum": 0 },
          "replace": { "type": "integer", "description": "Substitution weight, default 2", "minimum": 0 }
        }
      },
      "DistanceRequest": {
        "type": "object",
        "required": ["source", "target"],
        "properties": {
          "source":    { "type": "string", "description": "Source string (may be empty)" },
          "target":    { "type": "string", "description": "Target string (may be empty)" },
          "unit":      { "type": "string", "enum": ["rune", "byte"], "description": "Comparison unit, default rune" },
          "costs":     { "$ref": "#/components/schemas/Costs" },
          "normalize": { "type": "boolean", "description": "NFC-normalize both strings first" },
          "table":     { "type": "boolean", "description": "Include the full (m+1)x(n+1) cost table" }
        }
      },
      "DistanceResponse": {
        "type": "object",
        "properties": {
          "source":   { "type": "string" },
          "target":   { "type": "string" },
          "unit":     { "type": "string" },
          "distance": { "type": "integer" },
          "table":    { "type": "array", "items": { "type": "array", "items": { "type": "integer" } } }
        }
      },
      "BatchRequest": {
        "type": "object",
        "required": ["pairs"],
        "properties": {
          "pairs":   { "type": "array", "items": { "$ref": "#/components/schemas/Pair" } },
          "unit":    { "type": "string", "enum": ["rune", "byte"] },
          "costs":   { "$ref": "#/components/schemas/Costs" },
          "timeout": { "type": "integer", "description": "Seconds, default 8" }
        }
      },
      "Pair": {
        "type": "object",
        "required": ["source", "target"],
        "properties": {
          "source": { "type": "string" },
          "target": { "type": "string" }
        }
      },
      "BatchResponse": {
        "type": "object",
        "properties": {
          "pairs":     { "type": "integer" },
          "distances": { "type": "array", "items": { "type": "integer" } }
        }
      },
      "Dict": {
        "type": "object",
        "properties": {
          "words": { "type": "array", "items": { "type": "string" } }
        }
      },
      "ClosestRequest": {
        "type": "object",
        "required": ["word"],
        "properties": {
          "word":         { "type": "string" },
          "words":        { "type": "array", "items": { "type": "string" }, "description": "Inline dictionary words" },
          "dict":         { "$ref": "#/components/schemas/Dict" },
          "dict_url":     { "type": "string", "description": "Remote dictionary JSON URL" },
          "limit":        { "type": "integer", "description": "Max suggestions, 0 = unlimited" },
          "max_distance": { "type": "integer", "description": "Drop candidates above this distance" },
          "timeout":      { "type": "integer", "description": "Seconds, default 8" }
        }
      },
      "ClosestResponse": {
        "type": "object",
        "properties": {
          "word":        { "type": "string" },
          "suggestions": { "type": "array", "items": { "$ref": "#/components/schemas/Suggestion" } }
        }
      },
      "Suggestion": {
        "type": "object",
        "properties": {
          "word":     { "type": "string" },
          "distance": { "type": "integer" }
        }
      },
      "SuggestRequest": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text":     { "type": "string" },
          "words":    { "type": "array", "items": { "type": "string" } },
          "dict":     { "$ref": "#/components/schemas/Dict" },
          "dict_url": { "type": "string" },
          "timeout":  { "type": "integer" }
        }
      },
      "Result": {
        "type": "object",
        "properties": {
          "original":     { "type": "string" },
          "corrected":    { "type": "string", "description": "Best suggestion applied per flagged word" },
          "editDistance": { "type": "integer", "description": "Distance(original, corrected)" },
          "charCount":    { "type": "integer" },
          "tokenCount":   { "type": "integer" },
          "errorCount":   { "type": "integer" },
          "flags":        { "type": "array", "items": { "$ref": "#/components/schemas/Flag" } }
        }
      },
      "Flag": {
        "type": "object",
        "properties": {
          "start":     { "type": "integer", "description": "Rune offset of the flagged word" },
          "end":       { "type": "integer", "description": "Rune offset one past the flagged word" },
          "origin":    { "type": "string" },
          "suggest":   { "type": "array", "items": { "type": "string" } },
          "distances": { "type": "array", "items": { "type": "integer" } }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
<head>
  <title>medit API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link href="https://fonts.googleapis.com/css?family=Montserrat:300,400,700|Roboto:300,400,700" rel="stylesheet">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
