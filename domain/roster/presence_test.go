package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPresence(t *testing.T) {
	tests := []struct {
		name    string
		cell    Cell
		present bool
	}{
		{name: "native boolean true", cell: Cell{Value: "TRUE", Kind: KindBoolean}, present: true},
		{name: "native boolean false", cell: Cell{Value: "FALSE", Kind: KindBoolean}, present: false},
		{name: "numeric one", cell: Cell{Value: "1", Kind: KindNumber}, present: true},
		{name: "numeric zero", cell: Cell{Value: "0", Kind: KindNumber}, present: false},
		{name: "nonzero number", cell: Cell{Value: "42.5", Kind: KindNumber}, present: true},
		{name: "negative number", cell: Cell{Value: "-1", Kind: KindNumber}, present: true},
		{name: "ja", cell: Cell{Value: "ja", Kind: KindText}, present: true},
		{name: "uppercase yes with spaces", cell: Cell{Value: "YES ", Kind: KindText}, present: true},
		{name: "y", cell: Cell{Value: "y", Kind: KindText}, present: true},
		{name: "true as text", cell: Cell{Value: "True", Kind: KindText}, present: true},
		{name: "one as text", cell: Cell{Value: "1", Kind: KindText}, present: true},
		{name: "nee", cell: Cell{Value: "nee", Kind: KindText}, present: false},
		{name: "no", cell: Cell{Value: "no", Kind: KindText}, present: false},
		{name: "n", cell: Cell{Value: "n", Kind: KindText}, present: false},
		{name: "false as text", cell: Cell{Value: "false", Kind: KindText}, present: false},
		{name: "zero as text", cell: Cell{Value: "0", Kind: KindText}, present: false},
		{name: "unrecognized text", cell: Cell{Value: "maybe", Kind: KindText}, present: false},
		{name: "empty string", cell: Cell{Value: "", Kind: KindText}, present: false},
		{name: "missing cell", cell: Cell{Kind: KindEmpty}, present: false},
		{name: "other kind", cell: Cell{Value: "2024-01-01", Kind: KindOther}, present: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.present, ClassifyPresence(tt.cell))
		})
	}
}

// The recognized truthy set must be exactly {ja, yes, y, true, 1}. Close
// variants stay absent.
func TestClassifyPresenceTruthySetIsExact(t *testing.T) {
	for _, v := range []string{"ja", "yes", "y", "true", "1", "JA", " Yes "} {
		assert.True(t, ClassifyPresence(Cell{Value: v, Kind: KindText}), "expected %q present", v)
	}
	for _, v := range []string{"jaa", "yess", "yep", "oui", "si", "2ja", "tru", "11"} {
		assert.False(t, ClassifyPresence(Cell{Value: v, Kind: KindText}), "expected %q absent", v)
	}
}

func TestClassifyPresenceIdempotent(t *testing.T) {
	cell := Cell{Value: "ja", Kind: KindText}
	first := ClassifyPresence(cell)
	assert.Equal(t, first, ClassifyPresence(cell))
}

func TestPresenceLabel(t *testing.T) {
	assert.Equal(t, "Yes", PresenceLabel(Cell{Value: "ja", Kind: KindText}))
	assert.Equal(t, "No", PresenceLabel(Cell{Value: "nee", Kind: KindText}))
	assert.Equal(t, "No", PresenceLabel(Cell{Kind: KindEmpty}))
}

func TestCellFloat(t *testing.T) {
	tests := []struct {
		value string
		want  float64
		ok    bool
	}{
		{"50", 50, true},
		{"87.5", 87.5, true},
		{"87,5", 87.5, true},
		{"80%", 80, true},
		{" 60 ", 60, true},
		{"n/a", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := Cell{Value: tt.value, Kind: KindText}.Float()
		assert.Equal(t, tt.ok, ok, "coercion of %q", tt.value)
		if ok {
			assert.InDelta(t, tt.want, got, 1e-9, "value of %q", tt.value)
		}
	}
}

func TestRowAtToleratesRaggedRows(t *testing.T) {
	row := Row{{Value: "a", Kind: KindText}}
	assert.Equal(t, "a", row.At(0).Value)
	assert.True(t, row.At(5).IsEmpty())
	assert.True(t, row.At(-1).IsEmpty())
}
