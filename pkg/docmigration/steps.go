package docmigration

import "contract-editor-be/pkg/doctree"

// Default returns the registry with the production migration chain.
//
// v1 → v2: early documents stored variable placeholders as "variable" nodes
// with a "name" attr; v2 renamed them to "injector" nodes keyed by
// "variableId".
//
// v2 → v3: conditional nodes stored a flat list of rules under "rules"; v3
// wraps them into the root AND logic group the evaluator expects.
func Default() *Registry {
	r := NewRegistry()
	r.Register(1, migrateV1VariableNodes)
	r.Register(2, migrateV2ConditionLists)
	return r
}

func migrateV1VariableNodes(doc doctree.Node) (doctree.Node, error) {
	return rewrite(doc, func(n doctree.Node) doctree.Node {
		if n.Type != "variable" {
			return n
		}
		out := n
		out.Type = doctree.TypeInjector
		out.Attrs = make(map[string]any, len(n.Attrs))
		for k, v := range n.Attrs {
			if k == "name" {
				out.Attrs["variableId"] = v
				continue
			}
			out.Attrs[k] = v
		}
		if _, ok := out.Attrs["type"]; !ok {
			out.Attrs["type"] = doctree.InjectorTypeText
		}
		return out
	}), nil
}

func migrateV2ConditionLists(doc doctree.Node) (doctree.Node, error) {
	return rewrite(doc, func(n doctree.Node) doctree.Node {
		if n.Type != doctree.TypeConditional {
			return n
		}
		rules, ok := n.Attrs["rules"].([]any)
		if !ok {
			return n
		}
		children := make([]any, 0, len(rules))
		for _, rule := range rules {
			if m, isMap := rule.(map[string]any); isMap {
				cp := make(map[string]any, len(m)+1)
				for k, v := range m {
					cp[k] = v
				}
				if _, hasType := cp["type"]; !hasType {
					cp["type"] = "rule"
				}
				children = append(children, cp)
			}
		}
		out := n
		out.Attrs = make(map[string]any, len(n.Attrs))
		for k, v := range n.Attrs {
			if k == "rules" {
				continue
			}
			out.Attrs[k] = v
		}
		out.Attrs["conditions"] = map[string]any{
			"id":       "root",
			"type":     "group",
			"logic":    "AND",
			"children": children,
		}
		return out
	}), nil
}

// rewrite applies fn to every node bottom-up and returns the new tree.
func rewrite(n doctree.Node, fn func(doctree.Node) doctree.Node) doctree.Node {
	if len(n.Content) > 0 {
		content := make([]doctree.Node, len(n.Content))
		for i, child := range n.Content {
			content[i] = rewrite(child, fn)
		}
		n.Content = content
	}
	return fn(n)
}
