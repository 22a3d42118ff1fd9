package roster

import (
	"strconv"
	"strings"
	"time"
)

// CellKind classifies the raw value a spreadsheet cell carried.
type CellKind string

const (
	KindEmpty   CellKind = "empty"
	KindBoolean CellKind = "boolean"
	KindNumber  CellKind = "number"
	KindText    CellKind = "text"
	KindOther   CellKind = "other"
)

// Cell is one decoded spreadsheet cell: the display value plus the
// kind the decoder observed. Numbers stay numbers, booleans stay booleans.
type Cell struct {
	Value string
	Kind  CellKind
}

// Row is one decoded data row, positional.
type Row []Cell

// At returns the cell at position idx, tolerating ragged rows.
func (r Row) At(idx int) Cell {
	if idx < 0 || idx >= len(r) {
		return Cell{Kind: KindEmpty}
	}
	return r[idx]
}

// IsEmpty reports whether the cell carries no usable value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty || strings.TrimSpace(c.Value) == ""
}

// Float coerces the cell to a float64. A failed coercion reports ok=false
// and the caller decides the fallback (aggregation treats it as 0).
func (c Cell) Float() (float64, bool) {
	if c.IsEmpty() {
		return 0, false
	}
	s := strings.TrimSpace(c.Value)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	// Tolerate a decimal comma ("12,5"), common in Dutch exports.
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Required column headers. Normalization refuses the whole workbook
// when either is absent.
const (
	HeaderManager  = "Leidinggevende"
	HeaderPartTime = "Parttime (%)"
)

// PresenceHeaders are the recognized participation column names,
// checked in priority order.
var PresenceHeaders = []string{"Aanwezig", "Present", "Participation"}

// DefaultPresence is the literal value a record gets when the workbook
// has no participation column at all.
const DefaultPresence = "nee"

// EmployeeRecord is one normalized spreadsheet row.
type EmployeeRecord struct {
	ID             string
	Name           string
	Function       string
	EmploymentType string
	EmployeeType   string
	StartDate      *time.Time
	EndDate        *time.Time
	Employer       string
	Manager        string
	PartTime       Cell
	Present        Cell
}

// ManagerStats aggregates the records of one manager group.
type ManagerStats struct {
	Manager          string  `json:"manager"`
	TotalEmployees   int     `json:"total_employees"`
	PresentEmployees int     `json:"present_employees"`
	AbsentEmployees  int     `json:"absent_employees"`
	TotalPartTime    float64 `json:"-"`
	AvgPartTime      float64 `json:"avg_part_time"`
}
