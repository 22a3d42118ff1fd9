package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterlens/adapters/excel"
	"rosterlens/domain/roster"
	"rosterlens/internal/errors"
)

func textRow(values ...string) roster.Row {
	row := make(roster.Row, len(values))
	for i, v := range values {
		kind := roster.KindText
		if v == "" {
			kind = roster.KindEmpty
		}
		row[i] = roster.Cell{Value: v, Kind: kind}
	}
	return row
}

func standardWorkbook(rows ...roster.Row) *excel.Workbook {
	return &excel.Workbook{
		FileName: "roster.xlsx",
		Headers: []string{
			"ID", "Name", "Function", "Type", "EmpType", "Start", "End",
			"X", "Y", "Employer", roster.HeaderManager, roster.HeaderPartTime, "Aanwezig",
		},
		Rows: rows,
	}
}

func TestNormalizeProducesOneRecordPerRow(t *testing.T) {
	wb := standardWorkbook(
		textRow("1", "Alice van Dam", "Engineer", "Vast", "Intern", "2023-01-02", "", "", "", "Acme", "Bob", "80", "ja"),
		textRow("2", "Chris de Vries", "Designer", "Tijdelijk", "Extern", "", "", "", "", "Acme", "Bob", "60", "nee"),
		textRow("3"), // nearly empty row is still a record
	)

	records, err := Normalize(wb)
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Alice van Dam", first.Name)
	assert.Equal(t, "Engineer", first.Function)
	assert.Equal(t, "Vast", first.EmploymentType)
	assert.Equal(t, "Intern", first.EmployeeType)
	require.NotNil(t, first.StartDate)
	assert.Equal(t, 2023, first.StartDate.Year())
	assert.Nil(t, first.EndDate)
	assert.Equal(t, "Acme", first.Employer)
	assert.Equal(t, "Bob", first.Manager)
	assert.Equal(t, "80", first.PartTime.Value)
	assert.True(t, roster.ClassifyPresence(first.Present))

	assert.False(t, roster.ClassifyPresence(records[1].Present))

	// Nearly empty rows keep their defaults instead of being dropped.
	last := records[2]
	assert.Equal(t, "3", last.ID)
	assert.Empty(t, last.Manager)
	assert.False(t, roster.ClassifyPresence(last.Present))
}

func TestNormalizeMissingManagerColumn(t *testing.T) {
	wb := &excel.Workbook{
		Headers: []string{"ID", "Name", roster.HeaderPartTime},
		Rows:    []roster.Row{textRow("1", "Alice", "80")},
	}

	records, err := Normalize(wb)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Equal(t, errors.CodeMissingColumns, errors.GetCode(err))
	assert.Contains(t, err.Error(), roster.HeaderManager)
}

func TestNormalizeMissingBothRequiredColumns(t *testing.T) {
	wb := &excel.Workbook{
		Headers: []string{"ID", "Name"},
		Rows:    []roster.Row{textRow("1", "Alice")},
	}

	_, err := Normalize(wb)
	require.Error(t, err)
	assert.Equal(t, errors.CodeMissingColumns, errors.GetCode(err))
	assert.Contains(t, err.Error(), roster.HeaderManager)
	assert.Contains(t, err.Error(), roster.HeaderPartTime)
}

// Required columns are located by header name, independent of position.
func TestNormalizeLocatesRequiredColumnsAnywhere(t *testing.T) {
	wb := &excel.Workbook{
		Headers: []string{roster.HeaderPartTime, "Name", roster.HeaderManager},
		Rows:    []roster.Row{textRow("50", "Alice", "Bob")},
	}

	records, err := Normalize(wb)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Bob", records[0].Manager)
	assert.Equal(t, "50", records[0].PartTime.Value)
}

func TestNormalizeDefaultsPresenceWhenColumnAbsent(t *testing.T) {
	wb := &excel.Workbook{
		Headers: []string{"Name", roster.HeaderManager, roster.HeaderPartTime},
		Rows:    []roster.Row{textRow("Alice", "Bob", "50")},
	}

	records, err := Normalize(wb)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, roster.DefaultPresence, records[0].Present.Value)
	assert.False(t, roster.ClassifyPresence(records[0].Present))
}

// "Aanwezig" outranks "Present" outranks "Participation".
func TestNormalizePresenceColumnPriority(t *testing.T) {
	wb := &excel.Workbook{
		Headers: []string{roster.HeaderManager, roster.HeaderPartTime, "Participation", "Aanwezig", "Present"},
		Rows:    []roster.Row{textRow("Bob", "50", "ja", "nee", "ja")},
	}

	records, err := Normalize(wb)
	require.NoError(t, err)
	assert.Equal(t, "nee", records[0].Present.Value)
}

func TestNormalizeEmptyPresenceCellClassifiesAbsent(t *testing.T) {
	wb := standardWorkbook(
		textRow("1", "Alice", "", "", "", "", "", "", "", "", "Bob", "50", ""),
	)

	records, err := Normalize(wb)
	require.NoError(t, err)
	assert.False(t, roster.ClassifyPresence(records[0].Present))
}

func TestNormalizeUnparseableDatesAreNil(t *testing.T) {
	wb := standardWorkbook(
		textRow("1", "Alice", "", "", "", "soon", "tbd", "", "", "", "Bob", "50", "ja"),
	)

	records, err := Normalize(wb)
	require.NoError(t, err)
	assert.Nil(t, records[0].StartDate)
	assert.Nil(t, records[0].EndDate)
}
