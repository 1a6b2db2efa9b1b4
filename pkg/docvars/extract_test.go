package docvars

import (
	"testing"

	"contract-editor-be/pkg/condition"
	"contract-editor-be/pkg/doctree"

	"github.com/stretchr/testify/assert"
)

func injectorNode(variableID, varType, label string) doctree.Node {
	return doctree.Node{
		Type: doctree.TypeInjector,
		Attrs: map[string]any{
			"variableId": variableID,
			"type":       varType,
			"label":      label,
		},
	}
}

func conditionalNode(conditions condition.Node, content ...doctree.Node) doctree.Node {
	return doctree.Node{
		Type: doctree.TypeConditional,
		Attrs: map[string]any{
			"conditions": conditionToMap(conditions),
			"expression": condition.Summarize(conditions),
		},
		Content: content,
	}
}

func conditionToMap(n condition.Node) map[string]any {
	out := map[string]any{"id": n.ID, "type": n.Type}
	switch n.Type {
	case condition.TypeRule:
		out["variableId"] = n.VariableID
		out["operator"] = n.Operator
		out["value"] = map[string]any{"mode": n.Value.Mode, "value": n.Value.Value}
	case condition.TypeGroup:
		children := make([]any, 0, len(n.Children))
		for _, c := range n.Children {
			children = append(children, conditionToMap(c))
		}
		out["logic"] = n.Logic
		out["children"] = children
	}
	return out
}

func TestExtractFromDocumentOrderAndDedup(t *testing.T) {
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			injectorNode("client_name", "TEXT", "Client name"),
			conditionalNode(
				condition.NewGroup("g", condition.LogicAnd,
					condition.NewRule("r1", "client_name", condition.OpNotEmpty, ""),
					condition.NewRule("r2", "contract_total", condition.OpGreater, "1000"),
				),
				injectorNode("start_date", "DATE", "Start date"),
			),
			injectorNode("contract_total", "CURRENCY", "Total"),
		},
	}

	vars := ExtractFromDocument(doc)

	ids := make([]string, len(vars))
	for i, v := range vars {
		ids[i] = v.VariableID
	}
	assert.Equal(t, []string{"client_name", "contract_total", "start_date"}, ids)

	// First occurrence wins: client_name keeps the injector metadata,
	// contract_total was first seen inside the rule so defaults to TEXT.
	assert.Equal(t, "TEXT", vars[0].Type)
	assert.Equal(t, "Client name", vars[0].Label)
	assert.Equal(t, "TEXT", vars[1].Type)
	assert.Empty(t, vars[1].Label)
	assert.Equal(t, "DATE", vars[2].Type)
}

func TestExtractFromConditionVariableReference(t *testing.T) {
	group := condition.NewGroup("g", condition.LogicOr,
		condition.NewVariableRule("r1", "total", condition.OpGreaterEq, "minimum"),
	)

	vars := ExtractFromCondition(group)
	assert.Len(t, vars, 2)
	assert.Equal(t, "total", vars[0].VariableID)
	assert.Equal(t, "minimum", vars[1].VariableID)
}

func TestExtractSkipsEmptyVariableIds(t *testing.T) {
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			{Type: doctree.TypeInjector, Attrs: map[string]any{"type": "TEXT"}},
			conditionalNode(condition.NewGroup("g", condition.LogicAnd,
				condition.NewRule("r1", "", condition.OpEqual, "x"),
			)),
		},
	}

	assert.Empty(t, ExtractFromDocument(doc))
}

func TestExtractRoleVariable(t *testing.T) {
	roleLabel := "Buyer"
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			{
				Type: doctree.TypeInjector,
				Attrs: map[string]any{
					"variableId":     doctree.BuildRoleVariableID(roleLabel, doctree.RolePropertyName),
					"type":           doctree.InjectorTypeRoleText,
					"isRoleVariable": true,
					"roleLabel":      roleLabel,
					"propertyKey":    doctree.RolePropertyName,
				},
			},
		},
	}

	vars := ExtractFromDocument(doc)
	assert.Len(t, vars, 1)
	assert.Equal(t, "ROLE.Buyer.name", vars[0].VariableID)
	assert.True(t, vars[0].IsRoleVariable)
	assert.Equal(t, "Buyer", *vars[0].RoleLabel)
}
