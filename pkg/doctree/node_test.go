package doctree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleDoc = `{
	"type": "doc",
	"content": [
		{"type": "paragraph", "content": [{"type": "text", "text": "Hello "}]},
		{"type": "injector", "attrs": {"variableId": "client_name", "type": "TEXT", "label": "Client"}},
		{"type": "conditional", "attrs": {"conditions": {"id": "g", "type": "group", "logic": "AND", "children": []}},
		 "content": [{"type": "paragraph", "content": [{"type": "text", "text": "maybe"}]}]}
	]
}`

func TestParseRoundTrip(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	assert.NoError(t, err)
	assert.Equal(t, TypeDoc, doc.Type)
	assert.Len(t, doc.Content, 3)
	assert.Equal(t, "Hello ", doc.Content[0].Content[0].Text)

	data, err := json.Marshal(doc)
	assert.NoError(t, err)
	reparsed, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, doc, reparsed)
}

func TestCloneIsDeep(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	assert.NoError(t, err)

	clone := doc.Clone()
	clone.Content[1].Attrs["variableId"] = "changed"
	clone.Content[0].Content[0].Text = "changed"

	assert.Equal(t, "client_name", doc.Content[1].Attrs["variableId"])
	assert.Equal(t, "Hello ", doc.Content[0].Content[0].Text)
}

func TestWalkPreOrder(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	assert.NoError(t, err)

	var visited []string
	doc.Walk(func(n Node) bool {
		visited = append(visited, n.Type)
		return true
	})

	assert.Equal(t, []string{
		TypeDoc, TypeParagraph, TypeText, TypeInjector,
		TypeConditional, TypeParagraph, TypeText,
	}, visited)
}

func TestNodesOfType(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	assert.NoError(t, err)

	injectors := doc.NodesOfType(TypeInjector)
	assert.Len(t, injectors, 1)
	assert.Equal(t, "client_name", injectors[0].Attrs["variableId"])

	paragraphs := doc.NodesOfType(TypeParagraph)
	assert.Len(t, paragraphs, 2)
}

func TestParseInjectorAttrs(t *testing.T) {
	attrs := ParseInjectorAttrs(map[string]any{
		"variableId":     "ROLE.Buyer.email",
		"type":           "ROLE_TEXT",
		"label":          "Buyer email",
		"isRoleVariable": true,
		"roleLabel":      "Buyer",
		"propertyKey":    "email",
	})

	assert.Equal(t, "ROLE.Buyer.email", attrs.VariableID)
	assert.Equal(t, InjectorTypeRoleText, attrs.Type)
	assert.True(t, attrs.IsRoleVariable)
	assert.Equal(t, "Buyer", *attrs.RoleLabel)
	assert.Equal(t, RolePropertyEmail, *attrs.PropertyKey)
	assert.Nil(t, attrs.Format)
}

func TestParseInjectorAttrsTolerant(t *testing.T) {
	attrs := ParseInjectorAttrs(map[string]any{"unexpected": []any{1, 2}})
	assert.Empty(t, attrs.VariableID)

	attrs = ParseInjectorAttrs(nil)
	assert.Empty(t, attrs.VariableID)
}

func TestBuildRoleVariableID(t *testing.T) {
	assert.Equal(t, "ROLE.Seller.name", BuildRoleVariableID("Seller", RolePropertyName))
}
