package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Predicate reports whether a raw value satisfies a rule.
// present is false when the field was missing from the request.
type Predicate func(value any, present bool) bool

// Rule pairs a predicate with the message reported when it fails.
type Rule struct {
	Message string
	Check   Predicate
}

var numericPattern = regexp.MustCompile(`^[+-]?([0-9]*[.])?[0-9]+$`)

// Required fails when the value is missing, null or renders as empty text.
func Required(message string) Rule {
	return Rule{Message: message, Check: func(value any, present bool) bool {
		return present && AsText(value) != ""
	}}
}

// Numeric fails unless the value renders as a decimal number.
func Numeric(message string) Rule {
	return Rule{Message: message, Check: func(value any, present bool) bool {
		if !present || !scalar(value) {
			return false
		}
		return numericPattern.MatchString(AsText(value))
	}}
}

// Positive fails unless the value coerces to a number greater than zero.
func Positive(message string) Rule {
	return Rule{Message: message, Check: func(value any, present bool) bool {
		if !present {
			return false
		}
		n, ok := AsFloat(value)
		return ok && n > 0
	}}
}

// Boolean fails unless the value is a boolean or one of "true", "false", "1", "0".
func Boolean(message string) Rule {
	return Rule{Message: message, Check: func(value any, present bool) bool {
		if !present {
			return false
		}
		_, ok := AsBool(value)
		return ok
	}}
}

// AsText renders a raw value the way rules compare it.
func AsText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// AsFloat coerces a raw value to a number. Empty text coerces to zero.
func AsFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, true
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// AsBool coerces a raw value to a boolean.
func AsBool(value any) (bool, bool) {
	if b, ok := value.(bool); ok {
		return b, true
	}
	if !scalar(value) {
		return false, false
	}
	switch AsText(value) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

func scalar(value any) bool {
	switch value.(type) {
	case string, float64, float32, int, int64, uint64, bool:
		return true
	}
	return false
}
