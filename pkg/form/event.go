package form

import "strconv"

// Target describes the input element that produced an event. It is a
// structural shape: any host input can be adapted to it.
type Target struct {
	// Name identifies the field the input is bound to.
	Name string
	// Type is the input kind ("text", "number", "range", "checkbox", ...).
	Type string
	// Value is the raw string value of the input.
	Value string
	// Checked is the toggle state for checkbox inputs.
	Checked bool
}

// Event is a change or blur event from an input element.
type Event struct {
	Target Target
}

// SubmitEvent is the event passed to HandleSubmit. PreventDefault suppresses
// the host's default submit action. Hosts without a default action may pass
// nil.
type SubmitEvent interface {
	PreventDefault()
}

// fieldValue normalizes a target descriptor to the semantic field value:
// numeric inputs parse to float64 (falling back to "" when unparseable, so a
// cleared number field never commits NaN), checkboxes use the checked flag,
// and everything else is the raw string.
func fieldValue(t Target) any {
	switch t.Type {
	case "number", "range":
		parsed, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return ""
		}
		return parsed
	case "checkbox":
		return t.Checked
	default:
		return t.Value
	}
}
