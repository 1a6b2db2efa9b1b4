package docvars

import (
	"contract-editor-be/pkg/condition"
	"contract-editor-be/pkg/doctree"
)

// ExtractedVariable is one distinct variable reference found in a document.
// Metadata comes from the first occurrence in document order.
type ExtractedVariable struct {
	VariableID     string  `json:"variableId"`
	Type           string  `json:"type"`
	Format         *string `json:"format,omitempty"`
	Label          string  `json:"label,omitempty"`
	IsRoleVariable bool    `json:"isRoleVariable,omitempty"`
	RoleID         *string `json:"roleId,omitempty"`
	RoleLabel      *string `json:"roleLabel,omitempty"`
	PropertyKey    *string `json:"propertyKey,omitempty"`
}

// ExtractFromDocument walks the document tree depth-first, pre-order, and
// returns every distinct variable referenced by injector nodes or conditional
// rules. Order is first appearance in document order; duplicates keep the
// first occurrence's metadata.
func ExtractFromDocument(root doctree.Node) []ExtractedVariable {
	c := newCollector()
	c.walkDocument(root)
	return c.out
}

// ExtractFromCondition returns the variables referenced by a condition tree:
// each rule's variableId plus any variable referenced on a rule's right-hand
// side. Rules carry no value-type annotation, so entries default to TEXT.
func ExtractFromCondition(node condition.Node) []ExtractedVariable {
	c := newCollector()
	c.walkCondition(node)
	return c.out
}

type collector struct {
	seen map[string]struct{}
	out  []ExtractedVariable
}

func newCollector() *collector {
	return &collector{seen: make(map[string]struct{}), out: make([]ExtractedVariable, 0)}
}

func (c *collector) add(v ExtractedVariable) {
	if v.VariableID == "" {
		return
	}
	if _, dup := c.seen[v.VariableID]; dup {
		return
	}
	c.seen[v.VariableID] = struct{}{}
	c.out = append(c.out, v)
}

func (c *collector) walkDocument(n doctree.Node) {
	switch n.Type {
	case doctree.TypeInjector:
		attrs := doctree.ParseInjectorAttrs(n.Attrs)
		if attrs.VariableID != "" {
			varType := attrs.Type
			if varType == "" {
				varType = doctree.InjectorTypeText
			}
			c.add(ExtractedVariable{
				VariableID:     attrs.VariableID,
				Type:           varType,
				Format:         attrs.Format,
				Label:          attrs.Label,
				IsRoleVariable: attrs.IsRoleVariable,
				RoleID:         attrs.RoleID,
				RoleLabel:      attrs.RoleLabel,
				PropertyKey:    attrs.PropertyKey,
			})
		}
	case doctree.TypeConditional:
		attrs := doctree.ParseConditionalAttrs(n.Attrs)
		c.walkCondition(attrs.Conditions)
	}

	for _, child := range n.Content {
		c.walkDocument(child)
	}
}

func (c *collector) walkCondition(n condition.Node) {
	switch n.Type {
	case condition.TypeRule:
		c.add(ExtractedVariable{VariableID: n.VariableID, Type: doctree.InjectorTypeText})
		if n.Value.IsVariableRef() {
			c.add(ExtractedVariable{VariableID: n.Value.Value, Type: doctree.InjectorTypeText})
		}
	case condition.TypeGroup:
		for _, child := range n.Children {
			c.walkCondition(child)
		}
	}
}
