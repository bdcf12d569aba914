// Package validation evaluates declarative per-field rules against a decoded
// request and reports the failures as ordered violation records.
//
// A field is declared once per route with an ordered list of rules. Every rule
// that fails contributes one violation, in declaration order, unless the field
// bails, in which case only its first failure is reported.
package validation

// Location is the part of the request a field is read from.
type Location string

const (
	LocationBody   Location = "body"
	LocationParams Location = "params"
)

// Violation describes one failed rule.
type Violation struct {
	Type     string   `json:"type"`
	Value    any      `json:"value,omitempty"`
	Msg      string   `json:"msg"`
	Path     string   `json:"path"`
	Location Location `json:"location"`
}

// Input is the request data rules are evaluated against.
type Input struct {
	Params map[string]string
	Body   map[string]any
}

// Lookup returns the raw value stored at path and whether it was present.
func (in Input) Lookup(loc Location, path string) (any, bool) {
	switch loc {
	case LocationParams:
		v, ok := in.Params[path]
		if !ok {
			return nil, false
		}
		return v, true
	case LocationBody:
		v, ok := in.Body[path]
		return v, ok
	}
	return nil, false
}

// Field binds an ordered rule list to a request location and path.
type Field struct {
	Location Location
	Path     string
	Rules    []Rule
	bail     bool
}

// Body declares a field read from the decoded request body.
func Body(path string, rules ...Rule) Field {
	return Field{Location: LocationBody, Path: path, Rules: rules}
}

// Param declares a field read from the route parameters.
func Param(path string, rules ...Rule) Field {
	return Field{Location: LocationParams, Path: path, Rules: rules}
}

// Bail returns a copy of f that stops at its first failing rule.
func (f Field) Bail() Field {
	f.bail = true
	return f
}

// Check evaluates the field's rules against in.
func (f Field) Check(in Input) []Violation {
	value, present := in.Lookup(f.Location, f.Path)

	var violations []Violation
	for _, rule := range f.Rules {
		if rule.Check(value, present) {
			continue
		}
		violations = append(violations, Violation{
			Type:     "field",
			Value:    value,
			Msg:      rule.Message,
			Path:     f.Path,
			Location: f.Location,
		})
		if f.bail {
			break
		}
	}
	return violations
}

// Run evaluates every field in order and concatenates their violations.
// A nil result means the input satisfied all rules.
func Run(in Input, fields ...Field) []Violation {
	var violations []Violation
	for _, f := range fields {
		violations = append(violations, f.Check(in)...)
	}
	return violations
}
