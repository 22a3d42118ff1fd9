// Package sniff inspects a decoded workbook and reports its structure:
// sheet inventory, header list, per-column type signatures and a few
// sample rows. It never fails; absent data simply reports as unknown.
package sniff

import (
	"gonum.org/v1/gonum/stat"

	"rosterlens/adapters/excel"
	"rosterlens/domain/roster"
)

const (
	// sampleDepth is how many data rows feed each column's type signature.
	sampleDepth = 9
	// sampleRowsShown is how many raw rows the report carries for preview.
	sampleRowsShown = 4
)

// NumericSummary describes a column whose sampled values are all numeric.
type NumericSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// ColumnProfile is the structure report entry for one header.
type ColumnProfile struct {
	Header    string          `json:"header"`
	Signature string          `json:"signature"`
	Numeric   *NumericSummary `json:"numeric,omitempty"`
}

// Report is the structure report for one uploaded workbook.
type Report struct {
	FileName    string          `json:"file_name"`
	FileSize    int64           `json:"file_size"`
	SheetNames  []string        `json:"sheet_names"`
	ActiveSheet string          `json:"active_sheet"`
	RowCount    int             `json:"row_count"`
	ColumnCount int             `json:"column_count"`
	Headers     []string        `json:"headers"`
	Columns     []ColumnProfile `json:"columns"`
	SampleRows  []roster.Row    `json:"-"`
}

// Inspect builds the structure report for a decoded workbook.
func Inspect(wb *excel.Workbook) *Report {
	report := &Report{
		FileName:    wb.FileName,
		FileSize:    wb.FileSize,
		SheetNames:  wb.SheetNames,
		ActiveSheet: wb.ActiveSheet,
		RowCount:    wb.RowCount,
		ColumnCount: wb.ColumnCount,
		Headers:     wb.Headers,
		Columns:     make([]ColumnProfile, 0, len(wb.Headers)),
	}

	for idx, header := range wb.Headers {
		if header == "" {
			continue
		}
		report.Columns = append(report.Columns, profileColumn(header, idx, wb.Rows))
	}

	limit := sampleRowsShown
	if limit > len(wb.Rows) {
		limit = len(wb.Rows)
	}
	report.SampleRows = wb.Rows[:limit]

	return report
}

// profileColumn examines up to sampleDepth rows of one column and joins the
// distinct observed kinds, in first-seen order, into a signature like
// "number/text". A column with no observed values reports as unknown.
func profileColumn(header string, idx int, rows []roster.Row) ColumnProfile {
	depth := sampleDepth
	if depth > len(rows) {
		depth = len(rows)
	}

	var kinds []roster.CellKind
	seen := make(map[roster.CellKind]bool)
	var numeric []float64
	allNumeric := true

	for r := 0; r < depth; r++ {
		cell := rows[r].At(idx)
		if cell.IsEmpty() {
			continue
		}
		if !seen[cell.Kind] {
			seen[cell.Kind] = true
			kinds = append(kinds, cell.Kind)
		}
		if v, ok := cell.Float(); ok && cell.Kind == roster.KindNumber {
			numeric = append(numeric, v)
		} else {
			allNumeric = false
		}
	}

	profile := ColumnProfile{Header: header, Signature: joinKinds(kinds)}

	if allNumeric && len(numeric) > 0 {
		summary := &NumericSummary{Mean: stat.Mean(numeric, nil)}
		if len(numeric) > 1 {
			summary.StdDev = stat.StdDev(numeric, nil)
		}
		profile.Numeric = summary
	}

	return profile
}

func joinKinds(kinds []roster.CellKind) string {
	if len(kinds) == 0 {
		return "unknown"
	}
	sig := string(kinds[0])
	for _, k := range kinds[1:] {
		sig += "/" + string(k)
	}
	return sig
}
