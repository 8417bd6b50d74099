package form

// Values maps field names to their current values. A value is normally a
// string, float64, bool, or a nested map for structured fields.
type Values map[string]any

// Clone returns a shallow copy of the values. Nested maps are shared.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Errors maps field names to error messages. An entry is either a string or,
// for nested values, another Errors mapping.
type Errors map[string]any

// Empty reports whether no field has an error.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Clone returns a shallow copy of the error mapping.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, val := range e {
		out[k] = val
	}
	return out
}

// Field returns the error message for a field, or "" when the field has no
// error or its entry is a nested mapping.
func (e Errors) Field(name string) string {
	if msg, ok := e[name].(string); ok {
		return msg
	}
	return ""
}

// Touched maps field names to whether the field has received at least one
// blur event. Absent means untouched.
type Touched map[string]bool

// Clone returns a copy of the touched mapping.
func (t Touched) Clone() Touched {
	out := make(Touched, len(t))
	for k, val := range t {
		out[k] = val
	}
	return out
}
