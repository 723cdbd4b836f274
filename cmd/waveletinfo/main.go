// Command waveletinfo prints the wavelet bases available to the denoiser with
// their filter lengths, maximum decomposition levels and band lengths.
//
// Usage:
//
//	waveletinfo [flags] [basis ...]
//
// Without arguments it prints info for all known bases.
//
// Examples:
//
//	waveletinfo db4
//	waveletinfo -n 2048 haar db6
//	waveletinfo -n 1000 -level 3 db4
//	waveletinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/belielov/denoise-method/dsp/wavelet"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("waveletinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	n := fs.Int("n", 1024, "signal length in samples")
	level := fs.Int("level", -1, "decomposition level for band lengths (default: maximum)")
	list := fs.Bool("list", false, "list available basis names")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: waveletinfo [flags] [basis ...]\n\n")
		fmt.Fprintf(stderr, "Prints filter length, maximum level and band lengths of wavelet bases.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *list {
		for _, name := range wavelet.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	names := fs.Args()
	if len(names) == 0 {
		names = wavelet.Names()
	}

	var bases []wavelet.Basis
	for _, name := range names {
		b, err := wavelet.Lookup(name)
		if err != nil {
			fmt.Fprintf(stderr, "warning: unknown basis %q (use -list to see available)\n", name)
			continue
		}
		bases = append(bases, b)
	}
	if len(bases) == 0 {
		return errors.New("no matching bases")
	}

	return printTable(stdout, bases, *n, *level)
}

func printTable(w io.Writer, bases []wavelet.Basis, n, level int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Basis\tTaps\tSamples\tMax level\tLevel\tBand lengths\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t----\t-------\t---------\t-----\t------------\n"); err != nil {
		return err
	}

	for _, b := range bases {
		maxLevel := wavelet.MaxLevel(n, b)
		l := level
		if l < 0 {
			l = maxLevel
		}

		bands := "-"
		if lengths, err := wavelet.BandLengths(n, b, l); err == nil {
			parts := make([]string, len(lengths))
			for i, v := range lengths {
				parts[i] = fmt.Sprint(v)
			}
			bands = strings.Join(parts, " ")
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\n", b.Name, b.FilterLen(), n, maxLevel, l, bands); err != nil {
			return err
		}
	}
	return tw.Flush()
}
