package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmptyGroup(t *testing.T) {
	assert.Equal(t, "always", Summarize(NewGroup("g", LogicAnd)))
}

func TestSummarizeRules(t *testing.T) {
	group := NewGroup("g", LogicAnd,
		NewRule("r1", "client_age", OpGreaterEq, "18"),
		NewGroup("g2", LogicOr,
			NewRule("r2", "country", OpEqual, "ES"),
			NewRule("r3", "country", OpEqual, "PT"),
		),
	)

	assert.Equal(t,
		`client_age >= 18 AND (country = "ES" OR country = "PT")`,
		Summarize(group),
	)
}

func TestSummarizeUnaryAndVariableRef(t *testing.T) {
	group := NewGroup("g", LogicAnd,
		NewRule("r1", "has_discount", OpIsTrue, ""),
		NewVariableRule("r2", "total", OpGreater, "minimum"),
	)

	assert.Equal(t, "has_discount is true AND total > {minimum}", Summarize(group))
}

func TestSummarizeSkipsIncompleteRules(t *testing.T) {
	group := NewGroup("g", LogicAnd,
		NewRule("r1", "", OpEqual, "x"),
		NewRule("r2", "status", OpNotEmpty, ""),
	)

	assert.Equal(t, "status is not empty", Summarize(group))
}
