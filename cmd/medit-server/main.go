// Command medit-server provides an HTTP REST API for weighted edit
// distances.
//
// Usage:
//
//	medit-server -p 8080
//	medit-server -p 8080 -unit byte
//	MAX_BATCH_PAIRS=50000 medit-server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/Alfex4936/medit/medit"
)

func main() {
	port := flag.String("p", envOr("PORT", "8080"), "port to listen on")
	unit := flag.String("unit", envOr("UNIT", medit.DefaultUnit), "default comparison unit: rune | byte")

	// server limits
	maxBody    := flag.Int("max-body", envOrInt("MAX_BODY_BYTES", int(medit.MaxBodyBytes)), "request body cap in bytes")
	maxPairs   := flag.Int("max-pairs", envOrInt("MAX_BATCH_PAIRS", medit.MaxBatchPairs), "pairs accepted per batch request")
	maxSuggest := flag.Int("max-suggest", envOrInt("MAX_SUGGESTIONS", medit.MaxSuggestions), "suggestions kept per flagged word")

	flag.Parse()

	switch *unit {
	case "rune", "byte":
		medit.DefaultUnit = *unit
	default:
		log.Fatalf("unknown -unit %q (want rune or byte)", *unit)
	}
	medit.MaxBodyBytes = int64(*maxBody)
	medit.MaxBatchPairs = *maxPairs
	medit.MaxSuggestions = *maxSuggest
	log.Printf("   unit    : %s\n", medit.DefaultUnit)
	log.Printf("   limits  : body=%dB pairs=%d suggest=%d\n", medit.MaxBodyBytes, medit.MaxBatchPairs, medit.MaxSuggestions)

	http.HandleFunc("/v1/distance", medit.DistanceHandler)
	http.HandleFunc("/v1/batch", medit.BatchHandler)
	http.HandleFunc("/v1/closest", medit.ClosestHandler)
	http.HandleFunc("/v1/suggest", medit.SuggestHandler)
	http.HandleFunc("/health", medit.HealthHandler)
	http.HandleFunc("/openapi.json", medit.OpenAPIHandler)
	http.HandleFunc("/", medit.DocsHandler)

	addr := fmt.Sprintf(":%s", *port)
	log.Printf("🚀 medit server listening on http://localhost:%s\n", *port)
	log.Printf("   POST http://localhost:%s/v1/distance\n", *port)
	log.Printf("   POST http://localhost:%s/v1/batch\n", *port)
	log.Printf("   POST http://localhost:%s/v1/closest\n", *port)
	log.Printf("   POST http://localhost:%s/v1/suggest\n", *port)
	log.Printf("   GET  http://localhost:%s/health\n", *port)
	log.Printf("   GET  http://localhost:%s/       (Redoc UI)\n", *port)
	log.Fatal(http.ListenAndServe(addr, nil))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
