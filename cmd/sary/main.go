// Command sary searches a text file's on-disk suffix array for a pattern
// and prints matches to stdout, grounded on sary.c's grep/grep_count/
// grep_normal and its getopt_long flag table (spec.md §6).
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/gosary/sary/array"
	"github.com/gosary/sary/search"
	"github.com/gosary/sary/text"
)

// options mirrors sary.c's short_options/long_options table one flag at a
// time; go-flags' struct tags replace the hand-rolled getopt_long switch.
type options struct {
	Array           string `short:"a" long:"array" description:"array file path (default: FILE.ary)"`
	Count           bool   `short:"c" long:"count" description:"only print the number of occurrences"`
	IgnoreCase      bool   `short:"i" long:"ignore-case" description:"ignore case distinctions"`
	Lexicographical bool   `short:"l" long:"lexicographical" description:"print in array (suffix) order instead of sorting by occurrence"`
	After           string `short:"A" long:"after-context" description:"print NUM lines of trailing context"`
	Before          string `short:"B" long:"before-context" description:"print NUM lines of leading context"`
	Context         string `short:"C" long:"context" optional:"true" optional-value:"2" description:"print NUM (default 2) lines of context"`
	Start           string `short:"s" long:"start" description:"tagged-region start tag"`
	End             string `short:"e" long:"end" description:"tagged-region end tag"`
	Version         bool   `short:"v" long:"version" description:"show version and exit"`

	Args struct {
		Pattern string `positional-arg-name:"PATTERN"`
		File    string `positional-arg-name:"FILE"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("cmd", "sary").Logger()

	var opt options
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = "sary"
	parser.Usage = "[OPTIONS] PATTERN FILE"
	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			return 0
		}
		return 1
	}

	if opt.Version {
		fmt.Fprintln(out, "sary (Go port) 1.0")
		return 0
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

	s := search.New(tv, av)

	mode, err := resolveMode(opt)
	if err != nil {
		logger.Error().Err(err).Msg("invalid options")
		return 1
	}

	pattern := []byte(opt.Args.Pattern)
	var found bool
	if opt.IgnoreCase {
		found = s.ICaseSearch(pattern)
	} else {
		found = s.Search(pattern)
	}

	if opt.Count {
		if found {
			fmt.Fprintln(out, s.CountOccurrences())
		} else {
			fmt.Fprintln(out, 0)
		}
		return 0
	}

	if !found {
		return 0
	}

	if !opt.Lexicographical {
		s.SortOccurrences()
	}

	writeMatches(out, s, mode)
	return 0
}

// grepMode mirrors sary.c's grep_tab entries: a next-region function and
// the separators printed between and after groups.
type grepMode struct {
	next       func(s *search.Searcher) ([]byte, bool)
	sep        string
	trailerSep string
}

func resolveMode(opt options) (grepMode, error) {
	switch {
	case opt.Start != "" || opt.End != "":
		if opt.Start == "" {
			return grepMode{}, fmt.Errorf("-s/--start must be specified with -e/--end")
		}
		if opt.End == "" {
			return grepMode{}, fmt.Errorf("-e/--end must be specified with -s/--start")
		}
		start, end := []byte(opt.Start), []byte(opt.End)
		return grepMode{
			next: func(s *search.Searcher) ([]byte, bool) {
				return s.NextTaggedRegion(start, end)
			},
			sep:        "--\n",
			trailerSep: "\n",
		}, nil
	case opt.After != "" || opt.Before != "" || opt.Context != "":
		before, after, err := resolveContext(opt)
		if err != nil {
			return grepMode{}, err
		}
		return grepMode{
			next: func(s *search.Searcher) ([]byte, bool) {
				return s.NextContextLines(before, after)
			},
			sep:        "--\n",
			trailerSep: "",
		}, nil
	default:
		return grepMode{
			next: func(s *search.Searcher) ([]byte, bool) {
				return s.NextLine()
			},
		}, nil
	}
}

func resolveContext(opt options) (before, after int, err error) {
	if opt.Context != "" {
		n := 2
		if opt.Context != "true" {
			n, err = strconv.Atoi(opt.Context)
			if err != nil {
				return 0, 0, fmt.Errorf("invalid context length argument")
			}
		}
		before, after = n, n
	}
	if opt.Before != "" {
		before, err = strconv.Atoi(opt.Before)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid context length argument")
		}
	}
	if opt.After != "" {
		after, err = strconv.Atoi(opt.After)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid context length argument")
		}
	}
	return before, after, nil
}

// writeMatches streams every region through mode.next, separating groups
// the way grep_normal in sary.c does: a leading trailerSep from the prior
// group, then sep, then the raw bytes, binary-safe.
func writeMatches(out io.Writer, s *search.Searcher, mode grepMode) {
	var sep, trailerSep string
	count := 0
	for {
		region, ok := mode.next(s)
		if !ok {
			break
		}
		if trailerSep != "" {
			io.WriteString(out, trailerSep)
		}
		if sep != "" {
			io.WriteString(out, sep)
		}
		out.Write(region)
		sep, trailerSep = mode.sep, mode.trailerSep
		count++
	}
	if count > 0 && trailerSep != "" {
		io.WriteString(out, trailerSep)
	}
}
