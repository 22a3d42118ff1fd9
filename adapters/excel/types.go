package excel

import "rosterlens/domain/roster"

// Workbook is the decoded "header row + data rows" abstraction the rest of
// the pipeline works against. Only the first sheet is decoded; the other
// sheet names are kept for the structure report.
type Workbook struct {
	FileName    string
	FileSize    int64
	SheetNames  []string
	ActiveSheet string

	// Declared used-range extent of the decoded sheet.
	RowCount    int
	ColumnCount int

	Headers []string
	Rows    []roster.Row
}

// HeaderIndex locates a header by exact name. Returns -1 when absent.
func (w *Workbook) HeaderIndex(name string) int {
	for i, h := range w.Headers {
		if h == name {
			return i
		}
	}
	return -1
}
