// Command txt2xlsx converts a directory of delimited instrument text exports
// into xlsx workbooks.
//
// Usage:
//
//	txt2xlsx [flags] input-dir output-dir
//
// Examples:
//
//	txt2xlsx ./TXT ./Excel
//	txt2xlsx -encoding utf-8 -delim '\t' ./TXT ./Excel
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/belielov/denoise-method/internal/cliutil"
	"github.com/belielov/denoise-method/io/convert"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("txt2xlsx", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := convert.DefaultOptions()
	delim := fs.String("delim", def.Delimiter, `cell delimiter; \t for tab`)
	comment := fs.String("comment", def.Comment, "comment marker; empty disables")
	encoding := fs.String("encoding", def.Encoding, "input encoding: gbk or utf-8")
	workers := fs.Int("workers", 0, "files converted in parallel (default: GOMAXPROCS)")
	verbose := fs.Bool("v", false, "verbose logging")
	logFormat := fs.String("log-format", "text", "log format: text or json")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: txt2xlsx [flags] input-dir output-dir\n\n")
		fmt.Fprintf(stderr, "Converts every .txt file in input-dir to an .xlsx workbook in output-dir.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("want input and output directories, got %d arguments", fs.NArg())
	}

	log, err := cliutil.NewLogger(stderr, *logFormat, *verbose)
	if err != nil {
		return err
	}

	opts := convert.Options{
		Delimiter: unescape(*delim),
		Comment:   *comment,
		Encoding:  *encoding,
		Workers:   *workers,
		Logger:    log,
	}

	in, out := fs.Arg(0), fs.Arg(1)
	log.WithFields(logrus.Fields{"input": in, "output": out, "encoding": opts.Encoding}).Debug("converting")

	results, err := convert.Dir(ctx, in, out, opts)
	if err != nil {
		return err
	}

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.WithFields(logrus.Fields{"files": len(results), "failed": failed}).Info("batch finished")
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// unescape turns the shell-friendly `\t` into a tab.
func unescape(s string) string {
	return strings.ReplaceAll(s, `\t`, "\t")
}
