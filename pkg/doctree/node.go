package doctree

import "encoding/json"

// Node is one node of the editor's document tree. Container nodes carry
// Content; text leaves carry Text plus optional Marks. Attrs is schema-less
// here: typed views live in attrs.go.
type Node struct {
	Type    string            `json:"type"`
	Attrs   map[string]any    `json:"attrs,omitempty"`
	Content []Node            `json:"content,omitempty"`
	Text    string            `json:"text,omitempty"`
	Marks   []json.RawMessage `json:"marks,omitempty"` // pass-through
}

// Node type constants matching what the editor emits.
const (
	TypeDoc            = "doc"
	TypeParagraph      = "paragraph"
	TypeHeading        = "heading"
	TypeText           = "text"
	TypeBlockquote     = "blockquote"
	TypeCodeBlock      = "codeBlock"
	TypeHorizontalRule = "horizontalRule"
	TypeBulletList     = "bulletList"
	TypeOrderedList    = "orderedList"
	TypeListItem       = "listItem"
	TypeTable          = "table"
	TypeTableRow       = "tableRow"
	TypeTableCell      = "tableCell"
	TypeImage          = "image"
	TypeInjector       = "injector"
	TypeConditional    = "conditional"
	TypeSignature      = "signature"
	TypePageBreak      = "pageBreak"
	TypeHardBreak      = "hardBreak"
)

// Parse decodes a JSON document tree.
func Parse(data []byte) (Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return Node{}, err
	}
	return n, nil
}

// IsContainer reports whether the node has children.
func (n Node) IsContainer() bool {
	return len(n.Content) > 0
}

// Clone returns a deep copy of the node. Attrs maps and child slices are
// copied recursively so the result can be mutated without touching the
// original tree.
func (n Node) Clone() Node {
	out := Node{Type: n.Type, Text: n.Text}

	if n.Attrs != nil {
		out.Attrs = cloneAttrs(n.Attrs)
	}
	if n.Marks != nil {
		out.Marks = make([]json.RawMessage, len(n.Marks))
		for i, m := range n.Marks {
			out.Marks[i] = append(json.RawMessage(nil), m...)
		}
	}
	if n.Content != nil {
		out.Content = make([]Node, len(n.Content))
		for i, child := range n.Content {
			out.Content[i] = child.Clone()
		}
	}
	return out
}

func cloneAttrs(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		switch val := v.(type) {
		case map[string]any:
			out[k] = cloneAttrs(val)
		case []any:
			cp := make([]any, len(val))
			for i, item := range val {
				if m, ok := item.(map[string]any); ok {
					cp[i] = cloneAttrs(m)
				} else {
					cp[i] = item
				}
			}
			out[k] = cp
		default:
			out[k] = v
		}
	}
	return out
}

// Walk visits the node and its descendants depth-first, pre-order. Returning
// false from fn stops descent into that node's children.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Content {
		child.Walk(fn)
	}
}

// NodesOfType collects every descendant (including the node itself) with the
// given type, in document order.
func (n Node) NodesOfType(nodeType string) []Node {
	var out []Node
	n.Walk(func(node Node) bool {
		if node.Type == nodeType {
			out = append(out, node)
		}
		return true
	})
	return out
}

// EmptyDoc returns the minimal renderable document container.
func EmptyDoc() Node {
	return Node{Type: TypeDoc, Content: []Node{}}
}
