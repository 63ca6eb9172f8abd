package medit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestDistanceHandler(t *testing.T) {
	w := postJSON(t, DistanceHandler, `{"source":"kitten","target":"sitting"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp DistanceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Distance != 5 || resp.Unit != "rune" {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Table != nil {
		t.Fatalf("table returned without being requested: %v", resp.Table)
	}
}

func TestHandlersRejectNonPOST(t *testing.T) {
	handlers := []struct {
		name string
		h    http.HandlerFunc
	}{
		{"distance", DistanceHandler},
		{"batch", BatchHandler},
		{"closest", ClosestHandler},
		{"suggest", SuggestHandler},
	}
	for _, c := range handlers {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()
			c.h(w, req)
			if w.Code != http.StatusMethodNotAllowed {
				t.Fatalf("status = %d, want 405", w.Code)
			}
		})
	}
}

func TestDistanceHandlerValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing target", `{"source":"abc"}`},
		{"missing source", `{"target":"abc"}`},
		{"malformed", `{"source":`},
		{"wrong type", `{"source":5,"target":"abc"}`},
		{"unknown unit", `{"source":"a","target":"b","unit":"grapheme"}`},
		{"negative cost", `{"source":"a","target":"b","costs":{"insert":-1,"delete":1,"replace":2}}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if w := postJSON(t, DistanceHandler, c.body); w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestDistanceHandlerEmptyStringsAreValid(t *testing.T) {
	w := postJSON(t, DistanceHandler, `{"source":"","target":""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp DistanceResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Distance != 0 {
		t.Fatalf("distance = %d, want 0", resp.Distance)
	}

	w = postJSON(t, DistanceHandler, `{"source":"","target":"abc"}`)
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Distance != 3 {
		t.Fatalf("empty source distance = %d, want 3", resp.Distance)
	}
}

func TestDistanceHandlerByteUnit(t *testing.T) {
	w := postJSON(t, DistanceHandler, `{"source":"한","target":"","unit":"byte"}`)
	var resp DistanceResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Distance != 3 || resp.Unit != "byte" {
		t.Fatalf("resp = %+v, want distance 3 unit byte", resp)
	}
}

func TestDistanceHandlerCustomCosts(t *testing.T) {
	w := postJSON(t, DistanceHandler, `{"source":"kitten","target":"sitting","costs":{"insert":1,"delete":1,"replace":1}}`)
	var resp DistanceResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Distance != 3 {
		t.Fatalf("unit-cost distance = %d, want 3", resp.Distance)
	}
}

func TestDistanceHandlerPartialCosts(t *testing.T) {
	// Omitted weights keep their defaults: replace lowered to 1 with
	// unit insert/delete intact gives the classic distance 3.
	w := postJSON(t, DistanceHandler, `{"source":"kitten","target":"sitting","costs":{"replace":1}}`)
	var resp DistanceResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Distance != 3 {
		t.Fatalf("partial-costs distance = %d, want 3", resp.Distance)
	}
}

func TestDistanceHandlerNormalize(t *testing.T) {
	// Same text, one composed, one decomposed.
	body := `{"source":"cafe` + "́" + `","target":"café","normalize":true}`
	w := postJSON(t, DistanceHandler, body)
	var resp DistanceResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Distance != 0 {
		t.Fatalf("normalized distance = %d, want 0", resp.Distance)
	}

	// Without normalization the forms differ.
	body = `{"source":"cafe` + "́" + `","target":"café"}`
	w = postJSON(t, DistanceHandler, body)
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Distance == 0 {
		t.Fatal("unnormalized forms should not match")
	}
}

func TestDistanceHandlerTable(t *testing.T) {
	w := postJSON(t, DistanceHandler, `{"source":"ab","target":"abc","table":true}`)
	var resp DistanceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Distance != 1 {
		t.Fatalf("distance = %d, want 1", resp.Distance)
	}
	if len(resp.Table) != 3 || len(resp.Table[0]) != 4 {
		t.Fatalf("table shape %dx%d, want 3x4", len(resp.Table), len(resp.Table[0]))
	}
	for j, v := range resp.Table[0] {
		if v != j {
			t.Fatalf("base row cell %d = %d", j, v)
		}
	}
	if got := resp.Table[2][3]; got != 1 {
		t.Fatalf("corner cell = %d, want 1", got)
	}
}

func TestDistanceHandlerTableTooLarge(t *testing.T) {
	old := maxTableCells
	maxTableCells = 16
	defer func() { maxTableCells = old }()

	w := postJSON(t, DistanceHandler, `{"source":"aaaaaa","target":"bbbbbb","table":true}`)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
}

func TestDistanceHandlerBodyCap(t *testing.T) {
	old := MaxBodyBytes
	MaxBodyBytes = 32
	defer func() { MaxBodyBytes = old }()

	big := `{"source":"` + strings.Repeat("a", 100) + `","target":"b"}`
	if w := postJSON(t, DistanceHandler, big); w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
}

func TestBatchHandler(t *testing.T) {
	body := `{"pairs":[{"source":"abc","target":"abd"},{"source":"ab","target":"abc"},{"source":"","target":""}]}`
	w := postJSON(t, BatchHandler, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp BatchResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Pairs != 3 {
		t.Fatalf("pairs = %d, want 3", resp.Pairs)
	}
	if want := []int{2, 1, 0}; len(resp.Distances) != 3 || resp.Distances[0] != want[0] || resp.Distances[1] != want[1] || resp.Distances[2] != want[2] {
		t.Fatalf("distances = %v, want %v", resp.Distances, want)
	}
}

func TestBatchHandlerValidation(t *testing.T) {
	if w := postJSON(t, BatchHandler, `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing pairs: status = %d, want 400", w.Code)
	}
	if w := postJSON(t, BatchHandler, `{"pairs":[]}`); w.Code != http.StatusOK {
		t.Fatalf("empty pairs: status = %d, want 200", w.Code)
	}
}

func TestBatchHandlerPairCap(t *testing.T) {
	old := MaxBatchPairs
	MaxBatchPairs = 1
	defer func() { MaxBatchPairs = old }()

	body := `{"pairs":[{"source":"a","target":"b"},{"source":"c","target":"d"}]}`
	if w := postJSON(t, BatchHandler, body); w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
}

func TestClosestHandler(t *testing.T) {
	body := `{"word":"recieve","words":["receive","recite","relieve"],"limit":2}`
	w := postJSON(t, ClosestHandler, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp ClosestResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Suggestions) != 2 || resp.Suggestions[0].Word != "receive" {
		t.Fatalf("suggestions = %v", resp.Suggestions)
	}
}

func TestClosestHandlerValidation(t *testing.T) {
	if w := postJSON(t, ClosestHandler, `{"words":["x"]}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing word: status = %d, want 400", w.Code)
	}
	if w := postJSON(t, ClosestHandler, `{"word":"x"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("no dictionary: status = %d, want 400", w.Code)
	}
}

func TestClosestHandlerRemoteDict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"words":["receive"]}`))
	}))
	defer srv.Close()

	body := `{"word":"recieve","dict_url":"` + srv.URL + `"}`
	w := postJSON(t, ClosestHandler, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp ClosestResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Suggestions) != 1 || resp.Suggestions[0].Distance != 2 {
		t.Fatalf("suggestions = %v", resp.Suggestions)
	}
}

func TestSuggestHandler(t *testing.T) {
	body := `{"text":"teh quick","dict":{"words":["the","quick"]}}`
	w := postJSON(t, SuggestHandler, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var res Result
	json.Unmarshal(w.Body.Bytes(), &res)
	if res.Corrected != "the quick" || res.ErrorCount != 1 {
		t.Fatalf("result = %+v", res)
	}
}

func TestSuggestHandlerValidation(t *testing.T) {
	if w := postJSON(t, SuggestHandler, `{"words":["x"]}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing text: status = %d, want 400", w.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	HealthHandler(w, req)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad health JSON: %v", err)
	}
	if body["status"] != "ok" || body["service"] != "medit" {
		t.Fatalf("health = %v", body)
	}
}

func TestOpenAPISpecIsValidJSON(t *testing.T) {
	if !json.Valid([]byte(openAPISpec)) {
		t.Fatal("openAPISpec is not valid JSON")
	}
	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	w := httptest.NewRecorder()
	OpenAPIHandler(w, req)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestDocsHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	DocsHandler(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "redoc") {
		t.Fatalf("docs: status %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	w = httptest.NewRecorder()
	DocsHandler(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown path: status = %d, want 404", w.Code)
	}
}
