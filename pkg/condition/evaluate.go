package condition

import (
	"strconv"
	"strings"
	"time"
)

// Values holds the raw comparison values keyed by variableId. Entries may be
// strings, numbers, booleans or nil; a missing key behaves like nil.
type Values map[string]any

// RuleTrace records the outcome of a single rule evaluation. It exists so UI
// can explain why a block is hidden without re-running the evaluator.
type RuleTrace struct {
	RuleID         string `json:"ruleId"`
	VariableID     string `json:"variableId"`
	Operator       string `json:"operator"`
	Actual         string `json:"actual"`
	Expected       string `json:"expected"`
	Result         bool   `json:"result"`
	CoercionFailed bool   `json:"coercionFailed,omitempty"`
}

// Evaluate interprets a condition tree against the given values. It is total:
// malformed rules, unknown operators and failed coercions all evaluate to
// false instead of erroring, so a broken condition hides content rather than
// crashing a render.
func Evaluate(n Node, values Values) bool {
	ok, _ := evaluate(n, values, nil)
	return ok
}

// EvaluateTrace is Evaluate plus a per-rule trace in evaluation order.
func EvaluateTrace(n Node, values Values) (bool, []RuleTrace) {
	trace := make([]RuleTrace, 0)
	ok, trace := evaluate(n, values, trace)
	return ok, trace
}

func evaluate(n Node, values Values, trace []RuleTrace) (bool, []RuleTrace) {
	switch n.Type {
	case TypeRule:
		return evaluateRule(n, values, trace)
	case TypeGroup:
		return evaluateGroup(n, values, trace)
	default:
		// A node we do not understand never blocks visibility.
		return true, trace
	}
}

func evaluateGroup(n Node, values Values, trace []RuleTrace) (bool, []RuleTrace) {
	// Empty group means "always visible".
	if len(n.Children) == 0 {
		return true, trace
	}

	// Children are evaluated in array order. No short-circuit: when tracing
	// is requested every rule outcome must be recorded.
	result := n.Logic != LogicOr
	for _, child := range n.Children {
		var ok bool
		ok, trace = evaluate(child, values, trace)
		if n.Logic == LogicOr {
			result = result || ok
		} else {
			result = result && ok
		}
	}
	return result, trace
}

func evaluateRule(n Node, values Values, trace []RuleTrace) (bool, []RuleTrace) {
	// An incomplete rule is vacuously true.
	if n.VariableID == "" {
		return true, trace
	}

	actual := values[n.VariableID]

	var expected any
	if n.Value.IsVariableRef() {
		expected = values[n.Value.Value]
	} else {
		expected = n.Value.Value
	}

	result, coercionFailed := applyOperator(n.Operator, actual, expected)

	if trace != nil {
		trace = append(trace, RuleTrace{
			RuleID:         n.ID,
			VariableID:     n.VariableID,
			Operator:       n.Operator,
			Actual:         coerceString(actual),
			Expected:       coerceString(expected),
			Result:         result,
			CoercionFailed: coercionFailed,
		})
	}
	return result, trace
}

func applyOperator(operator string, actual, expected any) (result, coercionFailed bool) {
	switch operator {
	case OpEqual:
		return coerceString(actual) == coerceString(expected), false
	case OpNotEqual:
		return coerceString(actual) != coerceString(expected), false

	case OpEmpty:
		return actual == nil || coerceString(actual) == "", false
	case OpNotEmpty:
		return actual != nil && coerceString(actual) != "", false

	case OpContains:
		return strings.Contains(coerceString(actual), coerceString(expected)), false
	case OpStartsWith:
		return strings.HasPrefix(coerceString(actual), coerceString(expected)), false
	case OpEndsWith:
		return strings.HasSuffix(coerceString(actual), coerceString(expected)), false

	case OpGreater, OpGreaterEq, OpLess, OpLessEq:
		a, aok := coerceNumber(actual)
		b, bok := coerceNumber(expected)
		if !aok || !bok {
			return false, true
		}
		switch operator {
		case OpGreater:
			return a > b, false
		case OpGreaterEq:
			return a >= b, false
		case OpLess:
			return a < b, false
		default:
			return a <= b, false
		}

	case OpBefore, OpAfter:
		a, aok := coerceDate(actual)
		b, bok := coerceDate(expected)
		if !aok || !bok {
			return false, true
		}
		if operator == OpBefore {
			return a.Before(b), false
		}
		return a.After(b), false

	case OpIsTrue:
		s := coerceString(actual)
		return s == "true" || s == "1", false
	case OpIsFalse:
		s := coerceString(actual)
		return s == "false" || s == "0" || s == "", false

	default:
		// Unknown operator: fail closed.
		return false, false
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return ""
	}
}

func coerceNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// dateLayouts are the formats accepted by the date operators, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
}

func coerceDate(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	s := strings.TrimSpace(coerceString(v))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
