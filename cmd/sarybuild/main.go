// Command sarybuild builds a suffix array file for a text corpus: an
// index-point pass (package builder) followed by a sort pass (package
// sorter), grounded on sary-1.0.4's builder.c (array_name/block_size/
// nthreads options), supplemented here since the distilled spec.md does
// not name a builder CLI of its own.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/gosary/sary/builder"
	"github.com/gosary/sary/progress"
	"github.com/gosary/sary/sorter"
	"github.com/gosary/sary/text"
)

type options struct {
	Array     string `short:"a" long:"array" description:"array file path (default: FILE.ary)"`
	Points    string `short:"p" long:"points" default:"byte" description:"index-point strategy: byte, word, line, paragraph"`
	Width     int    `short:"w" long:"width" default:"4" description:"array entry width in bytes: 4 or 8"`
	BlockSize int    `short:"b" long:"blocksize" description:"sort in blockSize-entry chunks written to temporary block files, then merge them, instead of a single sort pass"`
	Quiet     bool   `short:"q" long:"quiet" description:"suppress progress diagnostics"`

	Args struct {
		File string `positional-arg-name:"FILE"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("cmd", "sarybuild").Logger()

	var opt options
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = "sarybuild"
	parser.Usage = "[OPTIONS] FILE"
	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			return 0
		}
		return 1
	}

	ipoint, err := resolveIndexPoints(opt.Points)
	if err != nil {
		logger.Error().Err(err).Msg("invalid index-point strategy")
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

	progressFn := progressLogger(logger, opt.Quiet)

	b := builder.New(tv, arrayPath, opt.Width)
	b.SetIndexPointFunc(ipoint)
	b.ConnectProgress(progressFn)

	count, err := b.Index(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("indexing")
		return 1
	}
	logger.Info().Int("count", count).Msg("indexed")

	srt := sorter.New(tv, arrayPath, opt.Width)
	srt.ConnectProgress(count, progressFn)

	if opt.BlockSize > 0 {
		blocks, err := srt.SortBlocks(opt.BlockSize)
		if err != nil {
			logger.Error().Err(err).Msg("block-sorting")
			return 1
		}
		if err := srt.MergeBlocks(blocks, arrayPath); err != nil {
			logger.Error().Err(err).Msg("merging blocks")
			return 1
		}
	} else if err := srt.Sort(); err != nil {
		logger.Error().Err(err).Msg("sorting")
		return 1
	}

	logger.Info().Str("array", arrayPath).Msg("build complete")
	return 0
}

func resolveIndexPoints(name string) (builder.IndexPointFunc, error) {
	switch name {
	case "byte":
		return builder.IndexEveryByte, nil
	case "word":
		return builder.IndexEveryWord, nil
	case "line":
		return builder.IndexEveryLine, nil
	case "paragraph":
		return builder.IndexEveryParagraph, nil
	default:
		return nil, fmt.Errorf("unknown index-point strategy %q (want byte, word, line, or paragraph)", name)
	}
}

// progressLogger adapts a progress.Func to zerolog debug events; a nil
// func (when quiet) matches progress_quiet in builder.c.
func progressLogger(logger zerolog.Logger, quiet bool) progress.Func {
	if quiet {
		return nil
	}
	return func(st progress.State) {
		logger.Debug().Str("stage", st.Label).Int("count", st.Count).Int("total", st.Total).Msg("progress")
	}
}
