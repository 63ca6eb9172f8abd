// Command medit-cli computes weighted edit distances from the command
// line and prints the pretty-printed JSON result.
//
// Usage:
//
//	medit-cli kitten sitting
//	medit-cli -b -table résumé resume
//	medit-cli -costs 1,1,1 -f pairs.tsv
//	medit-cli -dict words.json -closest 3 -max 2 recieve
//	echo "teh quick brown fox" | medit-cli -dict words.json -suggest
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Alfex4936/medit/internal/parse"
	"github.com/Alfex4936/medit/internal/util"
	"github.com/Alfex4936/medit/medit"
)

func main() {
	file     := flag.String("f", "", "pair file (TSV src<TAB>tgt lines or a JSON array) instead of SOURCE TARGET")
	dictPath := flag.String("dict", "", "dictionary JSON file for -closest / -suggest")
	closestN := flag.Int("closest", 0, "rank the N closest dictionary words for WORD")
	maxDist  := flag.Int("max", -1, "drop -closest candidates above this distance (-1 = no cap)")
	suggest  := flag.Bool("suggest", false, "flag unknown words in TEXT (or stdin) against -dict")
	byteUnit := flag.Bool("b", false, "compare bytes instead of runes")
	table    := flag.Bool("table", false, "include the full cost table")
	costs    := flag.String("costs", "", `"insert,delete,replace" weights (default 1,1,2)`)
	timeout  := flag.Duration("t", 8*time.Second, "overall timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c, err := parseCosts(*costs)
	must(err)

	// 사용자 딕셔너리 로드 (선택)
	var d *medit.Dict
	if *dictPath != "" {
		d, err = medit.LoadDict(*dictPath)
		must(err)
	}

	args := flag.Args()

	switch {
	case *file != "":
		runBatch(ctx, *file, args, c, *byteUnit)
	case *suggest:
		runSuggest(d, args)
	case *closestN > 0:
		runClosest(d, args, *closestN, *maxDist)
	default:
		runDistance(args, c, *byteUnit, *table)
	}
}

func runDistance(args []string, c medit.Costs, byteUnit, withTable bool) {
	if len(args) != 2 {
		usage("need exactly 2 arguments: SOURCE TARGET")
	}
	source, target := args[0], args[1]

	unit := "rune"
	if byteUnit {
		unit = "byte"
	}
	resp := medit.DistanceResponse{Source: source, Target: target, Unit: unit}

	if withTable {
		var (
			t   *medit.Table
			err error
		)
		if byteUnit {
			t, err = medit.NewTableBytes(source, target, c)
		} else {
			t, err = medit.NewTable(source, target, c)
		}
		must(err)
		resp.Table = t.Grid()
		resp.Distance = t.Distance()
	} else if byteUnit {
		resp.Distance = c.DistanceBytes(source, target)
	} else {
		resp.Distance = c.Distance(source, target)
	}

	emit(resp)
}

func runBatch(ctx context.Context, path string, args []string, c medit.Costs, byteUnit bool) {
	if len(args) != 0 {
		usage("-f mode takes no positional arguments")
	}

	data, err := os.ReadFile(path)
	must(err)
	pairs, err := parse.Pairs(data)
	must(err)

	var distances []int
	if byteUnit {
		distances, err = medit.BatchDistanceBytes(ctx, pairs, c)
	} else {
		distances, err = medit.BatchDistance(ctx, pairs, c)
	}
	must(err)

	emit(medit.BatchResponse{Pairs: len(distances), Distances: distances})
}

func runClosest(d *medit.Dict, args []string, n, maxDistance int) {
	if d == nil {
		usage("-closest needs -dict")
	}
	if len(args) != 1 {
		usage("-closest needs exactly 1 argument: WORD")
	}
	word := args[0]

	emit(medit.ClosestResponse{
		Word:        word,
		Suggestions: medit.Closest(word, d, n, maxDistance),
	})
}

func runSuggest(d *medit.Dict, args []string) {
	if d == nil {
		usage("-suggest needs -dict")
	}

	var text string
	switch len(args) {
	case 0:
		data, err := io.ReadAll(os.Stdin)
		must(err)
		text = string(data)
	case 1:
		text = args[0]
	default:
		usage("-suggest takes at most 1 argument: TEXT")
	}

	emit(medit.SuggestText(text, d))
}

// parseCosts turns "i,d,r" into Costs, keeping the 1/1/2 default for
// the empty string.
func parseCosts(s string) (medit.Costs, error) {
	if s == "" {
		return medit.DefaultCosts, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return medit.Costs{}, fmt.Errorf(`-costs wants "insert,delete,replace", got %q`, s)
	}
	var c medit.Costs
	for i, dst := range []*int{&c.Insert, &c.Delete, &c.Replace} {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return medit.Costs{}, fmt.Errorf("bad -costs value %q", parts[i])
		}
		*dst = n
	}
	if !c.Valid() {
		return medit.Costs{}, errors.New("-costs weights must be non-negative")
	}
	return c, nil
}

func emit(v any) {
	out, _ := util.MarshalNoEscape(v, true)
	fmt.Println(string(out))
}

func usage(msg string) {
	fmt.Fprintln(os.Stderr, "medit-cli:", msg)
	fmt.Fprintln(os.Stderr, "usage: medit-cli [-b] [-table] [-costs i,d,r] SOURCE TARGET")
	fmt.Fprintln(os.Stderr, "       medit-cli [-b] [-costs i,d,r] -f PAIRS.tsv")
	fmt.Fprintln(os.Stderr, "       medit-cli -dict WORDS.json -closest N [-max D] WORD")
	fmt.Fprintln(os.Stderr, "       medit-cli -dict WORDS.json -suggest [TEXT]")
	os.Exit(2)
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "medit-cli:", err)
		os.Exit(1)
	}
}
