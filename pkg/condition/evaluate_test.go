package condition

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateEmptyGroupIsTrue(t *testing.T) {
	group := NewGroup("g1", LogicAnd)
	assert.True(t, Evaluate(group, Values{}))
	assert.True(t, Evaluate(group, Values{"anything": "x"}))

	group = NewGroup("g1", LogicOr)
	assert.True(t, Evaluate(group, Values{}))
}

func TestEvaluateEmptyVariableIdIsTrue(t *testing.T) {
	rule := NewRule("r1", "", OpEqual, "anything")
	assert.True(t, Evaluate(rule, Values{}))
}

func TestEvaluateAndOrCombinations(t *testing.T) {
	values := Values{"status": "active", "amount": "5"}

	ruleTrue := NewRule("r1", "status", OpEqual, "active")
	ruleFalse := NewRule("r2", "amount", OpGreater, "10")

	assert.True(t, Evaluate(ruleTrue, values))
	assert.False(t, Evaluate(ruleFalse, values))

	assert.False(t, Evaluate(NewGroup("g", LogicAnd, ruleTrue, ruleFalse), values))
	assert.True(t, Evaluate(NewGroup("g", LogicOr, ruleTrue, ruleFalse), values))

	// Nested: AND[R1, OR[R2, R1]] => true
	nested := NewGroup("g1", LogicAnd,
		ruleTrue,
		NewGroup("g2", LogicOr, ruleFalse, ruleTrue),
	)
	assert.True(t, Evaluate(nested, values))
}

func TestEvaluateStringOperators(t *testing.T) {
	values := Values{"name": "Acme Corporation"}

	assert.True(t, Evaluate(NewRule("r", "name", OpContains, "Corp"), values))
	assert.True(t, Evaluate(NewRule("r", "name", OpStartsWith, "Acme"), values))
	assert.True(t, Evaluate(NewRule("r", "name", OpEndsWith, "ration"), values))
	assert.False(t, Evaluate(NewRule("r", "name", OpContains, "Ltd"), values))
}

func TestEvaluateNumericOperators(t *testing.T) {
	values := Values{"amount": float64(100), "limit": "100"}

	assert.True(t, Evaluate(NewRule("r", "amount", OpGreaterEq, "100"), values))
	assert.True(t, Evaluate(NewRule("r", "amount", OpLessEq, "100"), values))
	assert.False(t, Evaluate(NewRule("r", "amount", OpGreater, "100"), values))
	assert.True(t, Evaluate(NewRule("r", "amount", OpLess, "200.5"), values))

	// Variable reference on the right-hand side
	assert.True(t, Evaluate(NewVariableRule("r", "amount", OpGreaterEq, "limit"), values))
}

func TestEvaluateNumericCoercionFailureIsFalse(t *testing.T) {
	values := Values{"amount": "not a number"}

	assert.False(t, Evaluate(NewRule("r", "amount", OpGreater, "10"), values))
	assert.False(t, Evaluate(NewRule("r", "amount", OpLess, "10"), values))

	// The trace surfaces the failed coercion.
	_, trace := EvaluateTrace(NewRule("r1", "amount", OpGreater, "10"), values)
	assert.Len(t, trace, 1)
	assert.True(t, trace[0].CoercionFailed)
	assert.False(t, trace[0].Result)
}

func TestEvaluateDateOperators(t *testing.T) {
	values := Values{"start": "2024-01-15", "end": "2024-06-30"}

	assert.True(t, Evaluate(NewRule("r", "start", OpBefore, "2024-06-30"), values))
	assert.True(t, Evaluate(NewRule("r", "end", OpAfter, "2024-01-15"), values))
	assert.False(t, Evaluate(NewRule("r", "start", OpAfter, "2024-06-30"), values))

	// Invalid dates compare false, never panic.
	assert.False(t, Evaluate(NewRule("r", "start", OpBefore, "no such date"), values))
	assert.False(t, Evaluate(NewRule("r", "missing", OpBefore, "2024-06-30"), values))
}

func TestEvaluateBooleanOperators(t *testing.T) {
	assert.True(t, Evaluate(NewRule("r", "flag", OpIsTrue, ""), Values{"flag": true}))
	assert.True(t, Evaluate(NewRule("r", "flag", OpIsTrue, ""), Values{"flag": "1"}))
	assert.False(t, Evaluate(NewRule("r", "flag", OpIsTrue, ""), Values{"flag": "yes"}))

	assert.True(t, Evaluate(NewRule("r", "flag", OpIsFalse, ""), Values{"flag": false}))
	assert.True(t, Evaluate(NewRule("r", "flag", OpIsFalse, ""), Values{"flag": "0"}))
	assert.True(t, Evaluate(NewRule("r", "flag", OpIsFalse, ""), Values{}))
}

func TestEvaluateEmptinessOperators(t *testing.T) {
	assert.True(t, Evaluate(NewRule("r", "v", OpEmpty, ""), Values{}))
	assert.True(t, Evaluate(NewRule("r", "v", OpEmpty, ""), Values{"v": ""}))
	assert.True(t, Evaluate(NewRule("r", "v", OpEmpty, ""), Values{"v": nil}))
	assert.False(t, Evaluate(NewRule("r", "v", OpEmpty, ""), Values{"v": "x"}))

	assert.True(t, Evaluate(NewRule("r", "v", OpNotEmpty, ""), Values{"v": "x"}))
	assert.False(t, Evaluate(NewRule("r", "v", OpNotEmpty, ""), Values{}))
}

func TestEvaluateUnknownOperatorIsFalse(t *testing.T) {
	assert.False(t, Evaluate(NewRule("r", "v", "matches_regex", ".*"), Values{"v": "x"}))
}

func TestEvaluateUnknownNodeTypeIsTrue(t *testing.T) {
	assert.True(t, Evaluate(Node{Type: "future_thing"}, Values{}))
}

// Totality: arbitrary junk inputs must produce a boolean, never a panic.
func TestEvaluateTotality(t *testing.T) {
	operators := []string{
		OpEqual, OpNotEqual, OpGreater, OpLess, OpGreaterEq, OpLessEq,
		OpContains, OpStartsWith, OpEndsWith, OpBefore, OpAfter,
		OpIsTrue, OpIsFalse, OpEmpty, OpNotEmpty, "bogus", "",
	}
	actuals := []any{nil, "", "abc", "12", float64(3.5), true, false, []string{"x"}, map[string]any{}}

	for _, op := range operators {
		for _, actual := range actuals {
			assert.NotPanics(t, func() {
				Evaluate(NewRule("r", "v", op, "10"), Values{"v": actual})
			})
		}
	}
}

func TestEvaluateTraceOrder(t *testing.T) {
	values := Values{"a": "1", "b": "2"}
	group := NewGroup("g", LogicAnd,
		NewRule("r1", "a", OpEqual, "1"),
		NewRule("r2", "b", OpEqual, "99"),
		NewRule("r3", "a", OpEqual, "1"),
	)

	ok, trace := EvaluateTrace(group, values)
	assert.False(t, ok)
	assert.Len(t, trace, 3)
	assert.Equal(t, "r1", trace[0].RuleID)
	assert.Equal(t, "r2", trace[1].RuleID)
	assert.Equal(t, "r3", trace[2].RuleID)
	assert.True(t, trace[0].Result)
	assert.False(t, trace[1].Result)
	assert.Equal(t, "2", trace[1].Actual)
	assert.Equal(t, "99", trace[1].Expected)
}

func TestRuleValueUnmarshalForms(t *testing.T) {
	var n Node
	err := json.Unmarshal([]byte(`{"id":"r","type":"rule","variableId":"v","operator":"eq","value":"plain"}`), &n)
	assert.NoError(t, err)
	assert.Equal(t, "plain", n.Value.Value)
	assert.False(t, n.Value.IsVariableRef())

	err = json.Unmarshal([]byte(`{"id":"r","type":"rule","variableId":"v","operator":"eq","value":{"mode":"variable","value":"other"}}`), &n)
	assert.NoError(t, err)
	assert.Equal(t, "other", n.Value.Value)
	assert.True(t, n.Value.IsVariableRef())
}
