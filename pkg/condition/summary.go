package condition

import (
	"fmt"
	"strings"
)

// operatorSymbols is the single symbol table used to render conditions for
// humans. The editor stores the rendered string in the conditional node's
// "expression" attr as a display cache; it is regenerated from the tree and
// never parsed back.
var operatorSymbols = map[string]string{
	OpEqual:      "=",
	OpNotEqual:   "!=",
	OpGreater:    ">",
	OpGreaterEq:  ">=",
	OpLess:       "<",
	OpLessEq:     "<=",
	OpContains:   "contains",
	OpStartsWith: "starts with",
	OpEndsWith:   "ends with",
	OpBefore:     "before",
	OpAfter:      "after",
}

// unarySymbols render without a right-hand side.
var unarySymbols = map[string]string{
	OpIsTrue:   "is true",
	OpIsFalse:  "is false",
	OpEmpty:    "is empty",
	OpNotEmpty: "is not empty",
}

// Summarize renders a condition tree as a human-readable expression, e.g.
//
//	client_age >= 18 AND (country = "ES" OR country = "PT")
//
// An empty group renders as "always".
func Summarize(n Node) string {
	s := summarize(n, true)
	if s == "" {
		return "always"
	}
	return s
}

func summarize(n Node, root bool) string {
	switch n.Type {
	case TypeRule:
		return summarizeRule(n)
	case TypeGroup:
		parts := make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			if p := summarize(child, false); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			return ""
		}
		logic := n.Logic
		if logic == "" {
			logic = LogicAnd
		}
		joined := strings.Join(parts, " "+logic+" ")
		if root || len(parts) == 1 {
			return joined
		}
		return "(" + joined + ")"
	default:
		return ""
	}
}

func summarizeRule(n Node) string {
	if n.VariableID == "" {
		return ""
	}
	if sym, ok := unarySymbols[n.Operator]; ok {
		return fmt.Sprintf("%s %s", n.VariableID, sym)
	}
	sym, ok := operatorSymbols[n.Operator]
	if !ok {
		sym = n.Operator
	}
	if n.Value.IsVariableRef() {
		return fmt.Sprintf("%s %s {%s}", n.VariableID, sym, n.Value.Value)
	}
	return fmt.Sprintf("%s %s %q", n.VariableID, sym, n.Value.Value)
}
