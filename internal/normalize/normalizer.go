// Package normalize maps raw workbook rows onto typed employee records.
package normalize

import (
	"strings"
	"time"

	"rosterlens/adapters/excel"
	"rosterlens/domain/roster"
	"rosterlens/internal/errors"
)

// layout is the single place that knows the positional column layout of
// the non-critical fields. Manager and part-time % are located by header
// name instead and deliberately have no entry here.
var layout = struct {
	ID, Name, Function, EmploymentType, EmployeeType int
	StartDate, EndDate                               int
	Employer                                         int
}{
	ID:             0,
	Name:           1,
	Function:       2,
	EmploymentType: 3,
	EmployeeType:   4,
	StartDate:      5,
	EndDate:        6,
	Employer:       9,
}

// dateLayouts are tried in order when parsing the optional date columns.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/06",
	"2006/01/02",
	"02-01-2006",
	"02-Jan-06",
}

// Normalize turns the workbook's data rows into employee records.
//
// The two required headers gate the whole operation: when either is absent
// the call fails with MissingColumns and produces no records. No row is
// ever dropped for missing optional fields, so the record count always
// equals the data row count.
func Normalize(wb *excel.Workbook) ([]roster.EmployeeRecord, error) {
	managerIdx := wb.HeaderIndex(roster.HeaderManager)
	partTimeIdx := wb.HeaderIndex(roster.HeaderPartTime)

	var missing []string
	if managerIdx < 0 {
		missing = append(missing, roster.HeaderManager)
	}
	if partTimeIdx < 0 {
		missing = append(missing, roster.HeaderPartTime)
	}
	if len(missing) > 0 {
		return nil, errors.MissingColumns(missing)
	}

	presenceIdx := locatePresenceColumn(wb)

	records := make([]roster.EmployeeRecord, 0, len(wb.Rows))
	for _, row := range wb.Rows {
		rec := roster.EmployeeRecord{
			ID:             row.At(layout.ID).Value,
			Name:           row.At(layout.Name).Value,
			Function:       row.At(layout.Function).Value,
			EmploymentType: row.At(layout.EmploymentType).Value,
			EmployeeType:   row.At(layout.EmployeeType).Value,
			StartDate:      parseDate(row.At(layout.StartDate)),
			EndDate:        parseDate(row.At(layout.EndDate)),
			Employer:       row.At(layout.Employer).Value,
			Manager:        strings.TrimSpace(row.At(managerIdx).Value),
			PartTime:       row.At(partTimeIdx),
		}

		if presenceIdx >= 0 {
			rec.Present = row.At(presenceIdx)
		} else {
			rec.Present = roster.Cell{Value: roster.DefaultPresence, Kind: roster.KindText}
		}

		records = append(records, rec)
	}

	return records, nil
}

// locatePresenceColumn finds the optional participation column by exact
// header match, in priority order. Returns -1 when no candidate exists.
func locatePresenceColumn(wb *excel.Workbook) int {
	for _, name := range roster.PresenceHeaders {
		if idx := wb.HeaderIndex(name); idx >= 0 {
			return idx
		}
	}
	return -1
}

func parseDate(c roster.Cell) *time.Time {
	if c.IsEmpty() {
		return nil
	}
	value := strings.TrimSpace(c.Value)
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, value); err == nil {
			return &t
		}
	}
	return nil
}
