package condition

import "encoding/json"

// Node is a single node of a condition tree. The editor persists the tree as
// a tagged union: Type discriminates between a comparison rule and a logic
// group, and only the fields of the matching variant are populated.
type Node struct {
	ID   string `json:"id"`
	Type string `json:"type"` // "rule" | "group"

	// Rule fields
	VariableID string    `json:"variableId,omitempty"`
	Operator   string    `json:"operator,omitempty"`
	Value      RuleValue `json:"value,omitempty"`

	// Group fields
	Logic    string `json:"logic,omitempty"` // "AND" | "OR"
	Children []Node `json:"children,omitempty"`
}

// Node type discriminants.
const (
	TypeRule  = "rule"
	TypeGroup = "group"
)

// Group logic connectors.
const (
	LogicAnd = "AND"
	LogicOr  = "OR"
)

// Comparison operators.
const (
	OpEqual      = "eq"
	OpNotEqual   = "neq"
	OpGreater    = "gt"
	OpLess       = "lt"
	OpGreaterEq  = "gte"
	OpLessEq     = "lte"
	OpContains   = "contains"
	OpStartsWith = "starts_with"
	OpEndsWith   = "ends_with"
	OpBefore     = "before"
	OpAfter      = "after"
	OpIsTrue     = "is_true"
	OpIsFalse    = "is_false"
	OpEmpty      = "empty"
	OpNotEmpty   = "not_empty"
)

// Value modes for the right-hand side of a rule.
const (
	ModeLiteral  = "literal"
	ModeVariable = "variable"
)

// RuleValue is the right-hand side of a rule: either a literal string or a
// reference to another variable's resolved value.
type RuleValue struct {
	Mode  string `json:"mode,omitempty"`
	Value string `json:"value"`
}

// IsVariableRef reports whether the value refers to another variable.
func (v RuleValue) IsVariableRef() bool {
	return v.Mode == ModeVariable
}

// UnmarshalJSON accepts both the object form {"mode":..., "value":...} and the
// bare string form older documents carry.
func (v *RuleValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Mode = ModeLiteral
		v.Value = s
		return nil
	}

	type alias RuleValue
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		// Malformed value never blocks evaluation; it degrades to an
		// empty literal.
		v.Mode = ModeLiteral
		v.Value = ""
		return nil
	}
	*v = RuleValue(obj)
	if v.Mode == "" {
		v.Mode = ModeLiteral
	}
	return nil
}

// NewGroup builds a group node.
func NewGroup(id, logic string, children ...Node) Node {
	return Node{ID: id, Type: TypeGroup, Logic: logic, Children: children}
}

// NewRule builds a rule node comparing a variable against a literal.
func NewRule(id, variableID, operator, literal string) Node {
	return Node{
		ID:         id,
		Type:       TypeRule,
		VariableID: variableID,
		Operator:   operator,
		Value:      RuleValue{Mode: ModeLiteral, Value: literal},
	}
}

// NewVariableRule builds a rule node comparing a variable against another
// variable's resolved value.
func NewVariableRule(id, variableID, operator, otherVariableID string) Node {
	return Node{
		ID:         id,
		Type:       TypeRule,
		VariableID: variableID,
		Operator:   operator,
		Value:      RuleValue{Mode: ModeVariable, Value: otherVariableID},
	}
}
