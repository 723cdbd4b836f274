package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/belielov/denoise-method/dsp/core"
	"github.com/xuri/excelize/v2"
)

// Default column names, matching the processing scripts' output.
const (
	DefaultXName = "Wave_number"
	DefaultYName = "Intensity"
)

var (
	// ErrNoSheets is returned for a workbook without worksheets.
	ErrNoSheets = errors.New("sheet: no sheets in workbook")

	// ErrNoData is returned when no data rows remain after skipping.
	ErrNoData = errors.New("sheet: no data rows")
)

// Series is an (x, y) trace with its column names.
type Series struct {
	XName string
	YName string
	X     []float64
	Y     []float64
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.Y)
}

// ReadOptions selects where a trace is read from.
type ReadOptions struct {
	// Sheet is the worksheet name; empty selects the first sheet.
	Sheet string

	// SkipRows leading rows are skipped. The first skipped row, if any,
	// supplies the column names.
	SkipRows int

	// XCol and YCol are 1-based column numbers.
	XCol int
	YCol int
}

// DefaultReadOptions reads columns A and B of the first sheet below a single
// header row.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{SkipRows: 1, XCol: 1, YCol: 2}
}

func (o ReadOptions) validate() error {
	if o.SkipRows < 0 {
		return fmt.Errorf("sheet: %w: skip rows must be >= 0, got %d", core.ErrConfiguration, o.SkipRows)
	}
	if o.XCol < 1 || o.YCol < 1 {
		return fmt.Errorf("sheet: %w: columns are 1-based, got x=%d y=%d", core.ErrConfiguration, o.XCol, o.YCol)
	}
	return nil
}

// Read loads a trace from the workbook at path. Blank rows are skipped; a
// non-numeric cell in a data row is an error.
func Read(path string, opts ReadOptions) (Series, error) {
	if err := opts.validate(); err != nil {
		return Series{}, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return Series{}, fmt.Errorf("sheet: open %s: %w", path, err)
	}
	defer f.Close()

	name := opts.Sheet
	if name == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Series{}, ErrNoSheets
		}
		name = sheets[0]
	}

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return Series{}, fmt.Errorf("sheet: read %s: %w", name, err)
	}

	s := Series{XName: DefaultXName, YName: DefaultYName}
	if opts.SkipRows > 0 && len(rows) > 0 {
		if v := cell(rows[0], opts.XCol); v != "" {
			s.XName = v
		}
		if v := cell(rows[0], opts.YCol); v != "" {
			s.YName = v
		}
	}

	for i := opts.SkipRows; i < len(rows); i++ {
		row := rows[i]
		xs, ys := cell(row, opts.XCol), cell(row, opts.YCol)
		if xs == "" && ys == "" {
			continue
		}

		x, err := parseCell(xs, i+1, opts.XCol)
		if err != nil {
			return Series{}, err
		}
		y, err := parseCell(ys, i+1, opts.YCol)
		if err != nil {
			return Series{}, err
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
	}

	if len(s.Y) == 0 {
		return Series{}, fmt.Errorf("%w in %s", ErrNoData, name)
	}
	return s, nil
}

func cell(row []string, col int) string {
	if col > len(row) {
		return ""
	}
	return strings.TrimSpace(row[col-1])
}

func parseCell(v string, row, col int) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		ref, _ := excelize.CoordinatesToCellName(col, row)
		return 0, fmt.Errorf("sheet: %w: cell %s is not numeric: %q", core.ErrInvalidParameter, ref, v)
	}
	return f, nil
}

// WriteOptions controls Write.
type WriteOptions struct {
	// Sheet names the single worksheet; empty keeps the default "Sheet1".
	Sheet string
}

// Write stores s at path as a header row followed by one row per sample.
func Write(path string, s Series, opts WriteOptions) error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("sheet: %w: %d x values for %d y values", core.ErrInvalidParameter, len(s.X), len(s.Y))
	}

	f := excelize.NewFile()
	defer f.Close()

	name, err := renameDefault(f, opts.Sheet)
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(name)
	if err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	if err := sw.SetRow("A1", []interface{}{nameOr(s.XName, DefaultXName), nameOr(s.YName, DefaultYName)}); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	for i := range s.Y {
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("sheet: %w", err)
		}
		if err := sw.SetRow(ref, []interface{}{s.X[i], s.Y[i]}); err != nil {
			return fmt.Errorf("sheet: %w", err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("sheet: save %s: %w", path, err)
	}
	return nil
}

func renameDefault(f *excelize.File, name string) (string, error) {
	const def = "Sheet1"
	if name == "" || name == def {
		return def, nil
	}
	if err := f.SetSheetName(def, name); err != nil {
		return "", fmt.Errorf("sheet: %w", err)
	}
	return name, nil
}

func nameOr(name, def string) string {
	if name == "" {
		return def
	}
	return name
}
