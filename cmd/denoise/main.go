// Command denoise smooths (x, y) traces stored in xlsx workbooks.
//
// Usage:
//
//	denoise [flags] input.xlsx [input.xlsx ...]
//
// Each input is written next to itself as <name>-<method>_denoised.xlsx
// unless -o is given (single input only).
//
// Examples:
//
//	denoise 10-15M.xlsx
//	denoise -method dct -fraction 0.07 -mode soft 10-15M.xlsx
//	denoise -method wavelet -wavelet db6 -level 4 -chart *.xlsx
//	denoise -method savgol -window 21 -order 2 -o smooth.xlsx scan.xlsx
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/belielov/denoise-method/dsp/denoise"
	"github.com/belielov/denoise-method/dsp/threshold"
	"github.com/belielov/denoise-method/dsp/wavelet"
	"github.com/belielov/denoise-method/internal/cliutil"
	"github.com/belielov/denoise-method/io/sheet"
	"github.com/belielov/denoise-method/measure/quality"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type settings struct {
	cfg    denoise.Config
	read   sheet.ReadOptions
	output string
	chart  bool
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("denoise", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := denoise.DefaultConfig()
	method := fs.String("method", string(def.Method), "smoothing method: dct, wavelet or savgol")
	mode := fs.String("mode", def.Mode.String(), "shrinkage mode: hard or soft")
	fraction := fs.Float64("fraction", def.Fraction, "retained coefficient fraction for dct, in (0,1]")
	basis := fs.String("wavelet", def.Basis, "wavelet basis ("+strings.Join(wavelet.Names(), ", ")+")")
	level := fs.Int("level", def.Level, "wavelet decomposition level")
	scale := fs.Float64("scale", def.Scale, "universal threshold multiplier for wavelet")
	window := fs.Int("window", def.Window, "savgol window length (odd)")
	order := fs.Int("order", def.Order, "savgol polynomial order")

	rd := sheet.DefaultReadOptions()
	sheetName := fs.String("sheet", "", "worksheet to read (default: first sheet)")
	skip := fs.Int("skip", rd.SkipRows, "leading rows to skip; the first supplies column names")
	xcol := fs.Int("xcol", rd.XCol, "1-based x column")
	ycol := fs.Int("ycol", rd.YCol, "1-based y column")

	output := fs.String("o", "", "output path (single input only)")
	chart := fs.Bool("chart", false, "write original and denoised columns with a line chart")
	verbose := fs.Bool("v", false, "verbose logging")
	logFormat := fs.String("log-format", "text", "log format: text or json")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: denoise [flags] input.xlsx [input.xlsx ...]\n\n")
		fmt.Fprintf(stderr, "Smooths (x, y) traces with DCT or wavelet thresholding or Savitzky-Golay.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	log, err := cliutil.NewLogger(stderr, *logFormat, *verbose)
	if err != nil {
		return err
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		fs.Usage()
		return fmt.Errorf("no input files")
	}
	if *output != "" && len(inputs) > 1 {
		return fmt.Errorf("-o needs exactly one input, got %d", len(inputs))
	}

	m, err := denoise.ParseMethod(*method)
	if err != nil {
		return err
	}
	md, err := threshold.ParseMode(*mode)
	if err != nil {
		return err
	}

	s := settings{
		cfg: denoise.Config{
			Method:   m,
			Mode:     md,
			Fraction: *fraction,
			Basis:    *basis,
			Level:    *level,
			Scale:    *scale,
			Window:   *window,
			Order:    *order,
		},
		read:   sheet.ReadOptions{Sheet: *sheetName, SkipRows: *skip, XCol: *xcol, YCol: *ycol},
		output: *output,
		chart:  *chart,
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	var failed int
	for _, in := range inputs {
		if err := process(in, s, log); err != nil {
			log.WithField("file", in).WithError(err).Error("denoising failed")
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(inputs))
	}
	return nil
}

func process(in string, s settings, log logrus.FieldLogger) error {
	series, err := sheet.Read(in, s.read)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"file": in, "samples": series.Len()}).Debug("read trace")

	res, err := denoise.Run(series.Y, s.cfg)
	if err != nil {
		return err
	}

	out := s.output
	if out == "" {
		out = outputName(in, s.cfg.Method)
	}

	smoothName := series.YName + "_smooth"
	if s.chart {
		opts := sheet.DefaultChartOptions()
		opts.XName = series.XName
		opts.OriginalName = series.YName
		opts.DenoisedName = smoothName
		opts.Title = fmt.Sprintf("Original and %s denoised data", s.cfg.Method)
		err = sheet.WriteComparison(out, series.X, series.Y, res.Output, opts)
	} else {
		err = sheet.Write(out, sheet.Series{
			XName: series.XName,
			YName: smoothName,
			X:     series.X,
			Y:     res.Output,
		}, sheet.WriteOptions{})
	}
	if err != nil {
		return err
	}

	report, err := quality.Compare(series.Y, res.Output)
	if err != nil {
		return err
	}

	fields := logrus.Fields{
		"file":         in,
		"output":       out,
		"method":       s.cfg.Method,
		"samples":      series.Len(),
		"rmse":         report.RMSE,
		"tv_reduction": report.TVReduction,
	}
	if s.cfg.Method != denoise.MethodSavGol {
		fields["threshold"] = res.Threshold
		fields["retained"] = fmt.Sprintf("%d/%d", res.Retained, res.Total)
	}
	log.WithFields(fields).Info("denoised")
	return nil
}

// outputName maps 10-15M.xlsx to 10-15M-wavelet_denoised.xlsx.
func outputName(in string, m denoise.Method) string {
	base := strings.TrimSuffix(in, filepath.Ext(in))
	return fmt.Sprintf("%s-%s_denoised.xlsx", base, m)
}
