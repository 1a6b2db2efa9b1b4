// Package preview turns a raw document tree plus a value map into the
// resolved tree handed to the rendering collaborator: conditional blocks are
// pruned by the condition evaluator and injector nodes gain their display
// values. The transform is pure; the input tree is never mutated.
package preview

import (
	"contract-editor-be/pkg/condition"
	"contract-editor-be/pkg/doctree"
	"contract-editor-be/pkg/docvars"
)

// Transform rewrites the document top-down, depth-first:
//   - a conditional whose condition evaluates false is removed with its
//     entire subtree; a true conditional keeps its (transformed) children
//   - an injector gains resolvedValue (displayValue, or "[variableId]" when
//     no value is supplied) and hasValue
//   - other containers recurse; leaves are shared untouched
//
// If the root itself would be removed the result is an empty document
// container, never a zero node.
func Transform(root doctree.Node, values docvars.ValueMap) doctree.Node {
	return transform(root, values, nil)
}

// TransformTrace is Transform plus the rule traces of every conditional the
// pass evaluated, in document order.
func TransformTrace(root doctree.Node, values docvars.ValueMap) (doctree.Node, []condition.RuleTrace) {
	traces := make([]condition.RuleTrace, 0)
	out, keep := transformTraced(root, values, values.Raw(), &traces)
	if !keep {
		return doctree.EmptyDoc(), traces
	}
	return out, traces
}

func transform(root doctree.Node, values docvars.ValueMap, raw condition.Values) doctree.Node {
	if raw == nil {
		raw = values.Raw()
	}
	out, keep := transformTraced(root, values, raw, nil)
	if !keep {
		return doctree.EmptyDoc()
	}
	return out
}

func transformTraced(n doctree.Node, values docvars.ValueMap, raw condition.Values, traces *[]condition.RuleTrace) (doctree.Node, bool) {
	switch n.Type {
	case doctree.TypeConditional:
		attrs := doctree.ParseConditionalAttrs(n.Attrs)
		var visible bool
		if traces != nil {
			var ruleTraces []condition.RuleTrace
			visible, ruleTraces = condition.EvaluateTrace(attrs.Conditions, raw)
			*traces = append(*traces, ruleTraces...)
		} else {
			visible = condition.Evaluate(attrs.Conditions, raw)
		}
		if !visible {
			return doctree.Node{}, false
		}
		return transformContainer(n, values, raw, traces), true

	case doctree.TypeInjector:
		return resolveInjector(n, values), true

	default:
		if len(n.Content) == 0 {
			// Leaf: structural sharing, returned as-is.
			return n, true
		}
		return transformContainer(n, values, raw, traces), true
	}
}

func transformContainer(n doctree.Node, values docvars.ValueMap, raw condition.Values, traces *[]condition.RuleTrace) doctree.Node {
	out := n
	out.Content = make([]doctree.Node, 0, len(n.Content))
	for _, child := range n.Content {
		transformed, keep := transformTraced(child, values, raw, traces)
		if keep {
			out.Content = append(out.Content, transformed)
		}
	}
	return out
}

func resolveInjector(n doctree.Node, values docvars.ValueMap) doctree.Node {
	attrs := doctree.ParseInjectorAttrs(n.Attrs)
	if attrs.VariableID == "" {
		return n
	}

	out := n
	out.Attrs = make(map[string]any, len(n.Attrs)+2)
	for k, v := range n.Attrs {
		out.Attrs[k] = v
	}

	entry, ok := values[attrs.VariableID]
	if ok && entry.DisplayValue != "" {
		out.Attrs[doctree.AttrResolvedValue] = entry.DisplayValue
	} else {
		// Missing data renders visibly, never silently blank.
		out.Attrs[doctree.AttrResolvedValue] = "[" + attrs.VariableID + "]"
	}
	out.Attrs[doctree.AttrHasValue] = ok && entry.Value != nil && entry.Value != ""

	return out
}
