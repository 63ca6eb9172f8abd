package medit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.json")
	if err := os.WriteFile(path, []byte(`{"words":["kitten","sitting"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadDict(path)
	if err != nil {
		t.Fatalf("LoadDict: %v", err)
	}
	if len(d.Words) != 2 || d.Words[0] != "kitten" {
		t.Fatalf("loaded %v", d.Words)
	}
}

func TestLoadDictErrors(t *testing.T) {
	if _, err := LoadDict(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("want error for a missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"words": "not-a-list"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDict(bad); err == nil {
		t.Fatal("want error for malformed JSON")
	}
}

func TestFetchDict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"words":["alpha","beta"]}`))
	}))
	defer srv.Close()

	d, err := FetchDict(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchDict: %v", err)
	}
	if len(d.Words) != 2 || d.Words[1] != "beta" {
		t.Fatalf("fetched %v", d.Words)
	}
}

func TestFetchDictNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := FetchDict(context.Background(), srv.URL); err == nil {
		t.Fatal("want error for non-200 response")
	}
}

func TestFetchDictNilContext(t *testing.T) {
	var ctx context.Context
	if _, err := FetchDict(ctx, "http://unused.invalid"); err != ErrNilContext {
		t.Fatalf("got %v, want ErrNilContext", err)
	}
}

func TestDictSet(t *testing.T) {
	d := NewDict(" kitten ", "", "sitting", "kitten")
	set := d.set()
	if len(set) != 2 {
		t.Fatalf("set has %d entries, want 2", len(set))
	}
	if _, ok := set["kitten"]; !ok {
		t.Fatal("trimmed word missing from set")
	}

	var nilDict *Dict
	if nilDict.set() != nil {
		t.Fatal("nil dict must produce a nil set")
	}
}
