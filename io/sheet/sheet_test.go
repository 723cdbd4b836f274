package sheet

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/belielov/denoise-method/dsp/core"
	"github.com/belielov/denoise-method/internal/testutil"
	"github.com/xuri/excelize/v2"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.xlsx")
	want := Series{
		XName: "Wave_number",
		YName: "Intensity_smooth",
		X:     testutil.Ramp(50),
		Y:     testutil.AddNoise(testutil.DefaultSpectrum(50), 1, 0.05),
	}

	if err := Write(path, want, WriteOptions{}); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path, DefaultReadOptions())
	if err != nil {
		t.Fatal(err)
	}
	if got.XName != want.XName || got.YName != want.YName {
		t.Fatalf("names=%q,%q want %q,%q", got.XName, got.YName, want.XName, want.YName)
	}
	if got.Len() != want.Len() {
		t.Fatalf("len=%d, want %d", got.Len(), want.Len())
	}
	testutil.RequireSliceNearlyEqual(t, got.X, want.X, 1e-12)
	testutil.RequireSliceNearlyEqual(t, got.Y, want.Y, 1e-12)
}

func TestWriteNamedSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "named.xlsx")
	s := Series{X: []float64{1, 2}, Y: []float64{3, 4}}
	if err := Write(path, s, WriteOptions{Sheet: "smooth"}); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path, ReadOptions{Sheet: "smooth", SkipRows: 1, XCol: 1, YCol: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got.XName != DefaultXName || got.YName != DefaultYName {
		t.Fatalf("names=%q,%q", got.XName, got.YName)
	}
	testutil.RequireSliceNearlyEqual(t, got.Y, []float64{3, 4}, 0)
}

func TestReadColumnsAndBlankRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cols.xlsx")
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"id", "nu", "I"},
		{1, 400.5, 0.25},
		{},
		{2, 401.5, 0.5},
	}
	for i, row := range rows {
		ref, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", ref, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := Read(path, ReadOptions{SkipRows: 1, XCol: 2, YCol: 3})
	if err != nil {
		t.Fatal(err)
	}
	if got.XName != "nu" || got.YName != "I" {
		t.Fatalf("names=%q,%q", got.XName, got.YName)
	}
	testutil.RequireSliceNearlyEqual(t, got.X, []float64{400.5, 401.5}, 0)
	testutil.RequireSliceNearlyEqual(t, got.Y, []float64{0.25, 0.5}, 0)

	// Without skipping, the header row is data and must fail to parse.
	if _, err := Read(path, ReadOptions{XCol: 2, YCol: 3}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err=%v, want ErrInvalidParameter", err)
	}
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.xlsx")
	if err := Write(path, Series{X: []float64{1}, Y: []float64{2}}, WriteOptions{}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		opts ReadOptions
		want error
	}{
		{"negative skip", path, ReadOptions{SkipRows: -1, XCol: 1, YCol: 2}, core.ErrConfiguration},
		{"zero column", path, ReadOptions{XCol: 0, YCol: 2}, core.ErrConfiguration},
		{"all rows skipped", path, ReadOptions{SkipRows: 5, XCol: 1, YCol: 2}, ErrNoData},
		{"missing column", path, ReadOptions{SkipRows: 1, XCol: 1, YCol: 4}, core.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(tt.path, tt.opts); !errors.Is(err, tt.want) {
				t.Fatalf("err=%v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Read(filepath.Join(dir, "missing.xlsx"), DefaultReadOptions()); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Read(path, ReadOptions{Sheet: "nope", SkipRows: 1, XCol: 1, YCol: 2}); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}

func TestWriteLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	err := Write(path, Series{X: []float64{1, 2}, Y: []float64{1}}, WriteOptions{})
	if !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err=%v, want ErrInvalidParameter", err)
	}
}

func TestWriteComparison(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compare.xlsx")
	x := testutil.Ramp(20)
	original := testutil.AddNoise(testutil.DefaultSpectrum(20), 2, 0.1)
	denoised := testutil.DefaultSpectrum(20)

	opts := DefaultChartOptions()
	opts.Sheet = "wavelet db4"
	if err := WriteComparison(path, x, original, denoised, opts); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("wavelet db4")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 21 {
		t.Fatalf("rows=%d, want 21", len(rows))
	}
	if rows[0][0] != DefaultXName || rows[0][2] != "Intensity_smooth" {
		t.Fatalf("header=%v", rows[0])
	}

	got, err := Read(path, ReadOptions{Sheet: "wavelet db4", SkipRows: 1, XCol: 1, YCol: 3})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Y, denoised, 1e-12)
}

func TestWriteComparisonErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	opts := DefaultChartOptions()

	if err := WriteComparison(path, nil, nil, nil, opts); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err=%v, want ErrInvalidParameter", err)
	}
	if err := WriteComparison(path, []float64{1, 2}, []float64{1, 2}, []float64{1}, opts); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err=%v, want ErrInvalidParameter", err)
	}
}

func TestSheetRef(t *testing.T) {
	tests := map[string]string{
		"Sheet1":    "Sheet1",
		"my sheet":  "'my sheet'",
		"it's":      "'it''s'",
		"db4-level": "'db4-level'",
	}
	for in, want := range tests {
		if got := sheetRef(in); got != want {
			t.Fatalf("sheetRef(%q)=%q, want %q", in, got, want)
		}
	}
}
