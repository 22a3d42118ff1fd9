package excel

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"rosterlens/domain/roster"
	"rosterlens/internal/errors"
)

// Reader decodes uploaded spreadsheet bytes into a Workbook. Excel (.xlsx)
// is the primary format; CSV is accepted as a convenience and decodes with
// string-sniffed cell kinds only.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Decode reads all bytes from r and parses them according to the filename
// extension. Read problems surface as ReadFailure, parse problems as
// DecodeFailure.
func (d *Reader) Decode(r io.Reader, filename string, size int64) (*Workbook, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.ReadFailure(err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".csv" {
		return d.decodeCSV(raw, filename, size)
	}
	return d.decodeExcel(raw, filename, size)
}

func (d *Reader) decodeExcel(raw []byte, filename string, size int64) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.DecodeFailure(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.DecodeFailure(errors.New(errors.CodeDecodeFailure, "workbook has no sheets"))
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.DecodeFailure(err)
	}
	if len(rows) == 0 {
		return nil, errors.DecodeFailure(errors.New(errors.CodeDecodeFailure, "first sheet is empty"))
	}

	headers := trimHeaders(rows[0])

	dataRows := make([]roster.Row, 0, len(rows)-1)
	for r := 1; r < len(rows); r++ {
		row := make(roster.Row, len(rows[r]))
		for c, value := range rows[r] {
			row[c] = roster.Cell{
				Value: strings.TrimSpace(value),
				Kind:  cellKind(f, sheet, c, r, value),
			}
		}
		dataRows = append(dataRows, row)
	}

	rowCount, colCount := usedRange(f, sheet, rows)

	return &Workbook{
		FileName:    filename,
		FileSize:    size,
		SheetNames:  sheets,
		ActiveSheet: f.GetSheetName(f.GetActiveSheetIndex()),
		RowCount:    rowCount,
		ColumnCount: colCount,
		Headers:     headers,
		Rows:        dataRows,
	}, nil
}

func (d *Reader) decodeCSV(raw []byte, filename string, size int64) (*Workbook, error) {
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		return nil, errors.DecodeFailure(err)
	}
	if len(records) == 0 {
		return nil, errors.DecodeFailure(errors.New(errors.CodeDecodeFailure, "CSV file is empty"))
	}

	headers := trimHeaders(records[0])

	dataRows := make([]roster.Row, 0, len(records)-1)
	colCount := len(headers)
	for _, record := range records[1:] {
		if len(record) > colCount {
			colCount = len(record)
		}
		row := make(roster.Row, len(record))
		for c, value := range record {
			value = strings.TrimSpace(value)
			row[c] = roster.Cell{Value: value, Kind: sniffKind(value)}
		}
		dataRows = append(dataRows, row)
	}

	return &Workbook{
		FileName:    filename,
		FileSize:    size,
		SheetNames:  []string{"Sheet1"},
		ActiveSheet: "Sheet1",
		RowCount:    len(records),
		ColumnCount: colCount,
		Headers:     headers,
		Rows:        dataRows,
	}, nil
}

func trimHeaders(headerRow []string) []string {
	headers := make([]string, len(headerRow))
	for i, h := range headerRow {
		headers[i] = strings.TrimSpace(h)
	}
	return headers
}

// cellKind maps excelize's native cell type onto the pipeline's kinds,
// falling back to a string sniff when the type attribute is absent (plain
// numeric cells and formula results commonly decode as unset).
func cellKind(f *excelize.File, sheet string, col, row int, value string) roster.CellKind {
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return sniffKind(value)
	}
	ct, err := f.GetCellType(sheet, ref)
	if err != nil {
		return sniffKind(value)
	}
	switch ct {
	case excelize.CellTypeBool:
		return roster.KindBoolean
	case excelize.CellTypeNumber:
		return roster.KindNumber
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return roster.KindText
	case excelize.CellTypeDate, excelize.CellTypeError:
		return roster.KindOther
	default:
		return sniffKind(value)
	}
}

func sniffKind(value string) roster.CellKind {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return roster.KindEmpty
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return roster.KindNumber
	}
	return roster.KindText
}

// usedRange derives row/column counts from the sheet's declared dimension.
// Writers do not reliably keep the dimension in sync, so the extent of the
// decoded rows is the floor.
func usedRange(f *excelize.File, sheet string, rows [][]string) (int, int) {
	rowCount := len(rows)
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if dim, err := f.GetSheetDimension(sheet); err == nil && dim != "" {
		end := dim
		if idx := strings.Index(dim, ":"); idx >= 0 {
			end = dim[idx+1:]
		}
		if col, row, err := excelize.CellNameToCoordinates(end); err == nil {
			if row > rowCount {
				rowCount = row
			}
			if col > colCount {
				colCount = col
			}
		}
	}

	return rowCount, colCount
}
