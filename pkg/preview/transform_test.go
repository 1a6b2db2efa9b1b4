package preview

import (
	"encoding/json"
	"testing"

	"contract-editor-be/pkg/condition"
	"contract-editor-be/pkg/doctree"
	"contract-editor-be/pkg/docvars"

	"github.com/stretchr/testify/assert"
)

func paragraph(text string) doctree.Node {
	return doctree.Node{
		Type:    doctree.TypeParagraph,
		Content: []doctree.Node{{Type: doctree.TypeText, Text: text}},
	}
}

func injector(variableID string) doctree.Node {
	return doctree.Node{
		Type:  doctree.TypeInjector,
		Attrs: map[string]any{"variableId": variableID, "type": "TEXT"},
	}
}

func conditional(conditions condition.Node, content ...doctree.Node) doctree.Node {
	raw, _ := json.Marshal(conditions)
	var attrs map[string]any
	_ = json.Unmarshal(raw, &attrs)
	return doctree.Node{
		Type:    doctree.TypeConditional,
		Attrs:   map[string]any{"conditions": attrs},
		Content: content,
	}
}

func value(id, v string) docvars.VariableValue {
	return docvars.VariableValue{VariableID: id, Value: v, DisplayValue: v}
}

func TestTransformRemovesFalseConditional(t *testing.T) {
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			conditional(
				condition.NewGroup("g", condition.LogicAnd,
					condition.NewRule("r", "plan", condition.OpEqual, "premium"),
				),
				paragraph("premium only"),
			),
			paragraph("everyone"),
		},
	}
	values := docvars.ValueMap{"plan": value("plan", "basic")}

	out := Transform(doc, values)

	assert.Len(t, out.Content, 1)
	assert.Equal(t, doctree.TypeParagraph, out.Content[0].Type)
	assert.Equal(t, "everyone", out.Content[0].Content[0].Text)

	// The input tree is untouched.
	assert.Len(t, doc.Content, 2)
}

func TestTransformKeepsTrueConditionalAndRecurses(t *testing.T) {
	inner := conditional(
		condition.NewGroup("g2", condition.LogicAnd,
			condition.NewRule("r2", "extras", condition.OpIsTrue, ""),
		),
		paragraph("extras"),
	)
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			conditional(
				condition.NewGroup("g1", condition.LogicAnd,
					condition.NewRule("r1", "plan", condition.OpEqual, "premium"),
				),
				paragraph("premium"),
				inner,
			),
		},
	}
	values := docvars.ValueMap{"plan": value("plan", "premium"), "extras": value("extras", "false")}

	out := Transform(doc, values)

	assert.Len(t, out.Content, 1)
	outer := out.Content[0]
	assert.Equal(t, doctree.TypeConditional, outer.Type)
	// Nested false conditional is excised, surviving sibling stays.
	assert.Len(t, outer.Content, 1)
	assert.Equal(t, "premium", outer.Content[0].Content[0].Text)
}

func TestTransformResolvesInjector(t *testing.T) {
	doc := doctree.Node{
		Type:    doctree.TypeDoc,
		Content: []doctree.Node{injector("client_name")},
	}
	values := docvars.ValueMap{"client_name": value("client_name", "Acme S.L.")}

	out := Transform(doc, values)

	attrs := out.Content[0].Attrs
	assert.Equal(t, "Acme S.L.", attrs[doctree.AttrResolvedValue])
	assert.Equal(t, true, attrs[doctree.AttrHasValue])

	// Original attrs untouched.
	_, tainted := doc.Content[0].Attrs[doctree.AttrResolvedValue]
	assert.False(t, tainted)
}

func TestTransformPlaceholderForMissingValue(t *testing.T) {
	doc := doctree.Node{
		Type:    doctree.TypeDoc,
		Content: []doctree.Node{injector("total_amount")},
	}

	out := Transform(doc, docvars.ValueMap{})

	attrs := out.Content[0].Attrs
	assert.Equal(t, "[total_amount]", attrs[doctree.AttrResolvedValue])
	assert.Equal(t, false, attrs[doctree.AttrHasValue])
}

func TestTransformRootConditionalFallsBackToEmptyDoc(t *testing.T) {
	root := conditional(
		condition.NewGroup("g", condition.LogicAnd,
			condition.NewRule("r", "never", condition.OpEqual, "match"),
		),
		paragraph("gone"),
	)

	out := Transform(root, docvars.ValueMap{})
	assert.Equal(t, doctree.TypeDoc, out.Type)
	assert.Empty(t, out.Content)
}

func TestTransformFixedPointWithoutConditionals(t *testing.T) {
	doc := doctree.Node{
		Type:    doctree.TypeDoc,
		Content: []doctree.Node{paragraph("hello"), injector("a")},
	}
	values := docvars.ValueMap{"a": value("a", "1")}

	once := Transform(doc, values)
	twice := Transform(once, values)
	assert.Equal(t, once, twice)
}

func TestTransformDeterministic(t *testing.T) {
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			injector("a"),
			conditional(condition.NewGroup("g", condition.LogicAnd), paragraph("x")),
		},
	}
	values := docvars.ValueMap{"a": value("a", "1")}

	first, _ := json.Marshal(Transform(doc, values))
	second, _ := json.Marshal(Transform(doc, values))
	assert.Equal(t, string(first), string(second))
}

func TestTransformTraceCollectsRuleOutcomes(t *testing.T) {
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			conditional(
				condition.NewGroup("g", condition.LogicAnd,
					condition.NewRule("r1", "amount", condition.OpGreater, "10"),
				),
				paragraph("big"),
			),
		},
	}
	values := docvars.ValueMap{"amount": {VariableID: "amount", Value: float64(5), DisplayValue: "5"}}

	out, traces := TransformTrace(doc, values)
	assert.Empty(t, out.Content)
	assert.Len(t, traces, 1)
	assert.Equal(t, "r1", traces[0].RuleID)
	assert.False(t, traces[0].Result)
	assert.Equal(t, "5", traces[0].Actual)
	assert.Equal(t, "10", traces[0].Expected)
}

func TestTransformLeavesUnknownNodesAlone(t *testing.T) {
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			{Type: doctree.TypePageBreak},
			{Type: "customBlock", Attrs: map[string]any{"k": "v"}},
		},
	}

	out := Transform(doc, docvars.ValueMap{})
	assert.Len(t, out.Content, 2)
	assert.Equal(t, doc.Content[0], out.Content[0])
	assert.Equal(t, doc.Content[1], out.Content[1])
}
