package excel

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"rosterlens/domain/roster"
	"rosterlens/internal/errors"
)

// ExportFileName is the download name of the re-exported workbook.
const ExportFileName = "employee_analysis.xlsx"

// Header rows of the two export sheets. The Employees sheet reuses the
// required input header names so an exported workbook survives a re-import
// through the same pipeline.
var (
	employeeHeaders = []string{"Name", "Function", roster.HeaderManager, roster.HeaderPartTime, "Present"}
	statsHeaders    = []string{"Manager", "Total Employees", "Present", "Absent", "Avg Parttime (%)"}
)

// WriteExport serializes the normalized records and aggregate statistics
// into a two-sheet workbook. Pure serialization: the only derivation is the
// same ClassifyPresence label the UI shows.
func WriteExport(records []roster.EmployeeRecord, stats []roster.ManagerStats) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const employeesSheet = "Employees"
	const statsSheet = "Statistics"

	if err := f.SetSheetName("Sheet1", employeesSheet); err != nil {
		return nil, errors.Wrap(err, "failed to create Employees sheet")
	}
	if _, err := f.NewSheet(statsSheet); err != nil {
		return nil, errors.Wrap(err, "failed to create Statistics sheet")
	}

	if err := writeRow(f, employeesSheet, 1, toCells(employeeHeaders)); err != nil {
		return nil, err
	}
	for i, rec := range records {
		cells := []interface{}{
			rec.Name,
			rec.Function,
			rec.Manager,
			partTimeValue(rec.PartTime),
			roster.PresenceLabel(rec.Present),
		}
		if err := writeRow(f, employeesSheet, i+2, cells); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, statsSheet, 1, toCells(statsHeaders)); err != nil {
		return nil, err
	}
	for i, st := range stats {
		cells := []interface{}{
			st.Manager,
			st.TotalEmployees,
			st.PresentEmployees,
			st.AbsentEmployees,
			st.AvgPartTime,
		}
		if err := writeRow(f, statsSheet, i+2, cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize export workbook")
	}
	return buf, nil
}

func writeRow(f *excelize.File, sheet string, rowIdx int, cells []interface{}) error {
	for c, v := range cells {
		ref, err := excelize.CoordinatesToCellName(c+1, rowIdx)
		if err != nil {
			return errors.Wrap(err, "invalid cell coordinates")
		}
		if err := f.SetCellValue(sheet, ref, v); err != nil {
			return errors.Wrapf(err, "failed to write cell %s!%s", sheet, ref)
		}
	}
	return nil
}

// partTimeValue keeps numbers numeric in the export; a non-numeric raw
// value is written back verbatim.
func partTimeValue(c roster.Cell) interface{} {
	if v, ok := c.Float(); ok {
		return v
	}
	return c.Value
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
