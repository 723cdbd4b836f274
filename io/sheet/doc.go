// Package sheet reads and writes two-column measurement traces in xlsx
// workbooks.
//
// The expected layout is the one produced by instrument exports after
// conversion: an optional header row followed by (x, y) rows, for example
// wave number and intensity. Written workbooks carry a header row; the
// comparison workbook adds a line chart of the original and the denoised
// trace.
package sheet
