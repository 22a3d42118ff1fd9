package roster

import "strings"

// truthy is the exact recognized set for textual participation values.
var truthy = map[string]bool{
	"ja":   true,
	"yes":  true,
	"y":    true,
	"true": true,
	"1":    true,
}

// ClassifyPresence decides whether a participation value counts as present.
// It is the single source of truth: display highlighting, aggregation counts
// and the exported Yes/No label all go through here.
//
// Native booleans keep their value, numbers are present when nonzero, and
// text is matched case-insensitively against {ja, yes, y, true, 1}. Anything
// else, including empty and unrecognized text, is absent.
func ClassifyPresence(c Cell) bool {
	if c.IsEmpty() {
		return false
	}
	switch c.Kind {
	case KindBoolean:
		return strings.EqualFold(c.Value, "true") || c.Value == "1"
	case KindNumber:
		v, ok := c.Float()
		return ok && v != 0
	default:
		return truthy[strings.ToLower(strings.TrimSpace(c.Value))]
	}
}

// PresenceLabel renders the classification the way the export sheet and
// the record table show it.
func PresenceLabel(c Cell) string {
	if ClassifyPresence(c) {
		return "Yes"
	}
	return "No"
}
