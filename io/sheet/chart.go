package sheet

import (
	"fmt"
	"strings"

	"github.com/belielov/denoise-method/dsp/core"
	"github.com/xuri/excelize/v2"
)

// ChartOptions controls WriteComparison.
type ChartOptions struct {
	Sheet        string
	Title        string
	XName        string
	OriginalName string
	DenoisedName string
}

// DefaultChartOptions returns the labels used by the command line tools.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Sheet:        "Sheet1",
		Title:        "Original and denoised data",
		XName:        DefaultXName,
		OriginalName: DefaultYName,
		DenoisedName: "Intensity_smooth",
	}
}

// WriteComparison stores x, original and denoised as three columns and adds
// a line chart of both traces over x.
func WriteComparison(path string, x, original, denoised []float64, opts ChartOptions) error {
	n := len(x)
	if n == 0 {
		return fmt.Errorf("sheet: %w: empty trace", core.ErrInvalidParameter)
	}
	if len(original) != n || len(denoised) != n {
		return fmt.Errorf("sheet: %w: column lengths %d, %d, %d differ",
			core.ErrInvalidParameter, n, len(original), len(denoised))
	}

	def := DefaultChartOptions()
	opts.XName = nameOr(opts.XName, def.XName)
	opts.OriginalName = nameOr(opts.OriginalName, def.OriginalName)
	opts.DenoisedName = nameOr(opts.DenoisedName, def.DenoisedName)
	opts.Title = nameOr(opts.Title, def.Title)

	f := excelize.NewFile()
	defer f.Close()

	name, err := renameDefault(f, opts.Sheet)
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(name, "A1", &[]interface{}{opts.XName, opts.OriginalName, opts.DenoisedName}); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	for i := range x {
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("sheet: %w", err)
		}
		if err := f.SetSheetRow(name, ref, &[]interface{}{x[i], original[i], denoised[i]}); err != nil {
			return fmt.Errorf("sheet: %w", err)
		}
	}

	last := n + 1
	ref := sheetRef(name)
	categories := fmt.Sprintf("%s!$A$2:$A$%d", ref, last)
	chart := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       ref + "!$B$1",
				Categories: categories,
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", ref, last),
				Marker:     excelize.ChartMarker{Symbol: "none"},
			},
			{
				Name:       ref + "!$C$1",
				Categories: categories,
				Values:     fmt.Sprintf("%s!$C$2:$C$%d", ref, last),
				Marker:     excelize.ChartMarker{Symbol: "none"},
				Line:       excelize.ChartLine{Width: 2},
			},
		},
		Title:     []excelize.RichTextRun{{Text: opts.Title}},
		Legend:    excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{Width: 720, Height: 432},
	}
	if err := f.AddChart(name, "E2", chart); err != nil {
		return fmt.Errorf("sheet: add chart: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("sheet: save %s: %w", path, err)
	}
	return nil
}

// sheetRef quotes a sheet name for use in a cell range formula.
func sheetRef(name string) string {
	if strings.ContainsAny(name, " -'") {
		return "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return name
}
