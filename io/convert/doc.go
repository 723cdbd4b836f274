// Package convert turns delimited instrument text exports into xlsx
// workbooks, one workbook per file.
//
// Lines starting a comment (by default '#') and blank lines are dropped,
// every remaining line becomes one row, and cells that parse as numbers are
// stored as numbers. Exports written by Windows instrument software are
// commonly GBK encoded; [Options.Encoding] selects the decoder.
//
// [Dir] converts a whole directory concurrently. A failing file is reported
// in its [Result] and does not stop the batch.
package convert
