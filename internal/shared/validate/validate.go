package validate

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies the expected JSON shape of a field.
type Kind int

const (
	String Kind = iota
	Number
	Date
	StringList
)

// Field describes the validation rules for a single request field.
// Transforms (trim, upper-casing) are applied before bounds and enum
// checks, and the transformed value is what ends up in the cleaned map.
type Field struct {
	Name     string
	Kind     Kind
	Required bool

	// String transforms
	Trim  bool
	Upper bool

	// Bounds. Zero values mean "not set" except Min/Max which are pointers
	// so that 0 remains a usable bound.
	MinLen   int
	MaxLen   int
	Min      *float64
	Max      *float64
	Enum     []string
	MaxItems int
}

// Schema is a declarative, per-operation description of the accepted
// request fields. It never mutates stored state; it only inspects and
// cleans the decoded request body.
type Schema struct {
	Fields []Field
}

// Error reports the first violated constraint for a request.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// date formats accepted for Date fields, tried in order
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Apply checks the decoded request body against the schema and returns a
// cleaned map holding transformed values. Dates come back as time.Time,
// string lists as []string. Fails on the first violated constraint.
func (s Schema) Apply(in map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(s.Fields))

	for _, f := range s.Fields {
		raw, present := in[f.Name]
		if !present || raw == nil {
			if f.Required {
				return nil, &Error{Field: f.Name, Reason: "field is required"}
			}
			continue
		}

		switch f.Kind {
		case String:
			v, err := f.cleanString(raw)
			if err != nil {
				return nil, err
			}
			out[f.Name] = v

		case Number:
			v, ok := raw.(float64)
			if !ok {
				return nil, &Error{Field: f.Name, Reason: "must be a number"}
			}
			if f.Min != nil && v < *f.Min {
				return nil, &Error{Field: f.Name, Reason: fmt.Sprintf("must be at least %v", *f.Min)}
			}
			if f.Max != nil && v > *f.Max {
				return nil, &Error{Field: f.Name, Reason: fmt.Sprintf("must be at most %v", *f.Max)}
			}
			out[f.Name] = v

		case Date:
			str, ok := raw.(string)
			if !ok {
				return nil, &Error{Field: f.Name, Reason: "must be a date string"}
			}
			t, err := ParseDate(str)
			if err != nil {
				return nil, &Error{Field: f.Name, Reason: "invalid date format"}
			}
			out[f.Name] = t

		case StringList:
			list, ok := raw.([]any)
			if !ok {
				return nil, &Error{Field: f.Name, Reason: "must be a list of strings"}
			}
			if f.Required && len(list) == 0 {
				return nil, &Error{Field: f.Name, Reason: "must not be empty"}
			}
			if f.MaxItems > 0 && len(list) > f.MaxItems {
				return nil, &Error{Field: f.Name, Reason: fmt.Sprintf("must contain at most %d items", f.MaxItems)}
			}
			cleaned := make([]string, 0, len(list))
			for _, item := range list {
				v, err := f.cleanString(item)
				if err != nil {
					return nil, err
				}
				cleaned = append(cleaned, v)
			}
			out[f.Name] = cleaned
		}
	}

	return out, nil
}

func (f Field) cleanString(raw any) (string, error) {
	v, ok := raw.(string)
	if !ok {
		return "", &Error{Field: f.Name, Reason: "must be a string"}
	}
	if f.Trim {
		v = strings.TrimSpace(v)
	}
	if f.Upper {
		v = strings.ToUpper(v)
	}
	if f.Required && v == "" {
		return "", &Error{Field: f.Name, Reason: "field is required"}
	}
	if f.MinLen > 0 && len(v) < f.MinLen {
		return "", &Error{Field: f.Name, Reason: fmt.Sprintf("must be at least %d characters", f.MinLen)}
	}
	if f.MaxLen > 0 && len(v) > f.MaxLen {
		return "", &Error{Field: f.Name, Reason: fmt.Sprintf("must be at most %d characters", f.MaxLen)}
	}
	if len(f.Enum) > 0 {
		found := false
		for _, allowed := range f.Enum {
			if v == allowed {
				found = true
				break
			}
		}
		if !found {
			return "", &Error{Field: f.Name, Reason: fmt.Sprintf("must be one of: %s", strings.Join(f.Enum, ", "))}
		}
	}
	return v, nil
}

// ParseDate parses an ISO-8601 date or date-time string.
func ParseDate(s string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// Accessors for cleaned maps. They return zero values when the field is
// absent, which matches the optional-field semantics of Apply.

func Str(m map[string]any, name string) (string, bool) {
	v, ok := m[name].(string)
	return v, ok
}

func Num(m map[string]any, name string) (float64, bool) {
	v, ok := m[name].(float64)
	return v, ok
}

func Time(m map[string]any, name string) (time.Time, bool) {
	v, ok := m[name].(time.Time)
	return v, ok
}

func StrList(m map[string]any, name string) ([]string, bool) {
	v, ok := m[name].([]string)
	return v, ok
}

// Float is a convenience for building Min/Max bounds inline.
func Float(v float64) *float64 { return &v }
