// Command sarybench times normal, case-insensitive and incremental search
// with and without the LRU cache enabled, grounded on sary-1.0.4's
// search-benchmark.c (benchmark1/benchmark2/benchmark_iterate), with
// time.Now/time.Since standing in for clock().
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/gosary/sary/array"
	"github.com/gosary/sary/cache"
	"github.com/gosary/sary/search"
	"github.com/gosary/sary/text"
)

type options struct {
	Array string `short:"a" long:"array" description:"array file path (default: FILE.ary)"`
	N     int    `short:"n" long:"iterations" default:"1" description:"number of iterations per timed search"`

	Args struct {
		Pattern string `positional-arg-name:"PATTERN"`
		File    string `positional-arg-name:"FILE"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("cmd", "sarybench").Logger()

	var opt options
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = "sarybench"
	parser.Usage = "[-n NUM] PATTERN FILE"
	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			return 0
		}
		return 1
	}

	arrayPath := opt.Array
	if arrayPath == "" {
		arrayPath = opt.Args.File + ".ary"
	}

	tv, err := text.Open(opt.Args.File)
	if err != nil {
		logger.Error().Err(err).Str("file", opt.Args.File).Msg("opening text file")
		return 1
	}
	defer tv.Close()

	av, err := array.Open(arrayPath, array.Width4)
	if err != nil {
		logger.Error().Err(err).Str("array", arrayPath).Msg("opening array file")
		return 1
	}
	defer av.Close()

	pattern := []byte(opt.Args.Pattern)

	benchmarkNormal(tv, av, pattern, opt.N)
	benchmarkIncremental(tv, av, pattern, opt.N)
	return 0
}

// newCachedSearcher returns a Searcher over t/a with an LRU result cache
// installed, mirroring saryer_enable_cache in the reference.
func newCachedSearcher(t *text.View, a *array.View) *search.Searcher {
	s := search.New(t, a)
	c, err := cache.New(256)
	if err == nil {
		s.EnableCache(c)
	}
	return s
}

func timeIterate(n int, fn func()) time.Duration {
	start := time.Now()
	for i := 0; i < n; i++ {
		fn()
	}
	return time.Since(start)
}

func benchmarkNormal(t *text.View, a *array.View, pattern []byte, n int) {
	plain := search.New(t, a)
	icase := search.New(t, a)

	elapsed1 := timeIterate(n, func() { plain.Search(pattern) })
	elapsed2 := timeIterate(n, func() { icase.ICaseSearch(pattern) })

	cached := newCachedSearcher(t, a)
	cachedICase := newCachedSearcher(t, a)

	elapsed3 := timeIterate(n, func() { cached.Search(pattern) })
	elapsed4 := timeIterate(n, func() { cachedICase.ICaseSearch(pattern) })

	fmt.Println("= Normal Search")
	fmt.Printf("  search:       %s (with cache: %s)\n", elapsed1, elapsed3)
	fmt.Printf("  icase_search: %s (with cache: %s)\n", elapsed2, elapsed4)
}

func benchmarkIncremental(t *text.View, a *array.View, pattern []byte, n int) {
	normal := search.New(t, a)
	incremental := search.New(t, a)

	elapsed1 := timeIterate(n, func() { runNormalPrefixes(normal, pattern) })
	elapsed2 := timeIterate(n, func() { runIncrementalPrefixes(incremental, pattern) })

	cachedNormal := newCachedSearcher(t, a)
	cachedIncremental := newCachedSearcher(t, a)

	elapsed3 := timeIterate(n, func() { runNormalPrefixes(cachedNormal, pattern) })
	elapsed4 := timeIterate(n, func() { runIncrementalPrefixes(cachedIncremental, pattern) })

	fmt.Println("= Incremental Search")
	fmt.Printf("  search:       %s (with cache: %s)\n", elapsed1, elapsed3)
	fmt.Printf("  isearch:      %s (with cache: %s)\n", elapsed2, elapsed4)
}

// runNormalPrefixes re-searches from scratch for every growing prefix of
// pattern, the baseline incremental_search compares isearch against.
func runNormalPrefixes(s *search.Searcher, pattern []byte) {
	for i := 1; i <= len(pattern); i++ {
		if !s.SearchLen(pattern, i) {
			break
		}
	}
}

// runIncrementalPrefixes issues ISearch once per growing prefix, then
// resets the skip state for the next benchmark iteration.
func runIncrementalPrefixes(s *search.Searcher, pattern []byte) {
	for i := 1; i <= len(pattern); i++ {
		if !s.ISearch(pattern, i) {
			break
		}
	}
	s.ISearchReset()
}
