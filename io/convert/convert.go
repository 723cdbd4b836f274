package convert

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/belielov/denoise-method/dsp/core"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Supported encodings.
const (
	EncodingUTF8 = "utf-8"
	EncodingGBK  = "gbk"
)

// Options controls conversion.
type Options struct {
	// Delimiter separates cells within a line.
	Delimiter string

	// Comment starts a comment; the rest of the line is ignored.
	// Empty disables comments.
	Comment string

	// Encoding of the input files, EncodingUTF8 or EncodingGBK.
	Encoding string

	// Workers bounds the number of files converted at once by Dir.
	// Values < 1 use GOMAXPROCS.
	Workers int

	// Logger receives one entry per converted file. Nil discards.
	Logger logrus.FieldLogger
}

// DefaultOptions matches the instrument exports: comma separated, '#'
// comments, GBK text.
func DefaultOptions() Options {
	return Options{
		Delimiter: ",",
		Comment:   "#",
		Encoding:  EncodingGBK,
	}
}

func (o Options) validate() error {
	if o.Delimiter == "" {
		return fmt.Errorf("convert: %w: empty delimiter", core.ErrConfiguration)
	}
	if _, err := decoder(o.Encoding); err != nil {
		return err
	}
	return nil
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func decoder(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EncodingUTF8, "utf8":
		return unicode.UTF8BOM, nil
	case EncodingGBK:
		return simplifiedchinese.GBK, nil
	default:
		return nil, fmt.Errorf("convert: %w: unsupported encoding %q", core.ErrConfiguration, name)
	}
}

// Result reports the conversion of one file.
type Result struct {
	Input  string
	Output string
	Rows   int
	Err    error
}

// File converts the text file in to the workbook out and returns the number
// of rows written.
func File(in, out string, opts Options) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	enc, _ := decoder(opts.Encoding)

	src, err := os.Open(in)
	if err != nil {
		return 0, fmt.Errorf("convert: %w", err)
	}
	defer src.Close()

	rows, err := parse(transform.NewReader(src, enc.NewDecoder()), opts)
	if err != nil {
		return 0, fmt.Errorf("convert: read %s: %w", in, err)
	}
	if err := write(out, rows); err != nil {
		return 0, fmt.Errorf("convert: write %s: %w", out, err)
	}
	return len(rows), nil
}

func parse(r io.Reader, opts Options) ([][]interface{}, error) {
	var rows [][]interface{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if opts.Comment != "" {
			if i := strings.Index(line, opts.Comment); i >= 0 {
				line = line[:i]
			}
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, opts.Delimiter)
		row := make([]interface{}, len(fields))
		for i, field := range fields {
			field = strings.TrimSpace(field)
			if v, err := strconv.ParseFloat(field, 64); err == nil {
				row[i] = v
			} else {
				row[i] = field
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func write(path string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter("Sheet1")
	if err != nil {
		return err
	}
	for i, row := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := sw.SetRow(ref, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// OutputName maps a .txt file name to its .xlsx name.
func OutputName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".xlsx"
}

// Dir converts every .txt file in inDir into outDir, creating outDir when
// needed. Results are ordered by file name. The returned error is non-nil
// only for setup failures and cancellation; per-file failures are in
// Result.Err.
func Dir(ctx context.Context, inDir, outDir string, opts Options) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	var names []string
	for _, e := range entries {
		if strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			names = append(names, e.Name())
		}
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := opts.logger()

	results := make([]Result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res := Result{
				Input:  filepath.Join(inDir, name),
				Output: filepath.Join(outDir, OutputName(name)),
			}
			res.Rows, res.Err = File(res.Input, res.Output, opts)
			results[i] = res

			entry := log.WithFields(logrus.Fields{"file": name, "output": filepath.Base(res.Output)})
			if res.Err != nil {
				entry.WithError(res.Err).Warn("conversion failed")
			} else {
				entry.WithField("rows", res.Rows).Info("converted")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("convert: %w", err)
	}
	return results, nil
}
