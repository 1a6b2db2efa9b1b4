// Package export renders a resolved document tree to HTML, the hand-off
// format consumed by the PDF-rendering collaborator. It expects the tree to
// have gone through the preview transform already: conditionals pruned,
// injectors carrying resolvedValue.
package export

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"contract-editor-be/pkg/doctree"
)

// HTML converts a resolved document tree to an HTML fragment.
func HTML(root doctree.Node) string {
	var sb strings.Builder
	writeNode(&sb, root)
	return sb.String()
}

func writeNodes(sb *strings.Builder, nodes []doctree.Node) {
	for _, n := range nodes {
		writeNode(sb, n)
	}
}

func writeNode(sb *strings.Builder, n doctree.Node) {
	switch n.Type {
	case doctree.TypeDoc:
		writeNodes(sb, n.Content)
	case doctree.TypeParagraph:
		content := capture(n.Content)
		if content == "" {
			// Empty paragraphs keep their height in print output.
			content = "&nbsp;"
		}
		fmt.Fprintf(sb, "<p>%s</p>\n", content)
	case doctree.TypeHeading:
		level := headingLevel(n)
		fmt.Fprintf(sb, "<h%d>%s</h%d>\n", level, capture(n.Content), level)
	case doctree.TypeBlockquote:
		fmt.Fprintf(sb, "<blockquote>%s</blockquote>\n", capture(n.Content))
	case doctree.TypeCodeBlock:
		fmt.Fprintf(sb, "<pre><code>%s</code></pre>\n", capture(n.Content))
	case doctree.TypeHorizontalRule:
		sb.WriteString("<hr/>\n")
	case doctree.TypeBulletList:
		fmt.Fprintf(sb, "<ul>%s</ul>\n", capture(n.Content))
	case doctree.TypeOrderedList:
		fmt.Fprintf(sb, "<ol>%s</ol>\n", capture(n.Content))
	case doctree.TypeListItem:
		fmt.Fprintf(sb, "<li>%s</li>", capture(n.Content))
	case doctree.TypeTable:
		fmt.Fprintf(sb, "<table>%s</table>\n", capture(n.Content))
	case doctree.TypeTableRow:
		fmt.Fprintf(sb, "<tr>%s</tr>", capture(n.Content))
	case doctree.TypeTableCell:
		fmt.Fprintf(sb, "<td>%s</td>", capture(n.Content))
	case doctree.TypeImage:
		writeImage(sb, n)
	case doctree.TypeInjector:
		writeInjector(sb, n)
	case doctree.TypeSignature:
		writeSignature(sb, n)
	case doctree.TypePageBreak:
		sb.WriteString(`<div style="page-break-after: always;"></div>` + "\n")
	case doctree.TypeHardBreak:
		sb.WriteString("<br/>")
	case doctree.TypeText:
		sb.WriteString(markedText(n))
	default:
		// Unknown node types render their children so future editor
		// extensions degrade instead of disappearing.
		writeNodes(sb, n.Content)
	}
}

func capture(nodes []doctree.Node) string {
	var sb strings.Builder
	writeNodes(&sb, nodes)
	return sb.String()
}

func headingLevel(n doctree.Node) int {
	level := 1
	if l, ok := n.Attrs["level"].(float64); ok {
		level = int(l)
	}
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return level
}

func writeImage(sb *strings.Builder, n doctree.Node) {
	src, _ := n.Attrs["src"].(string)
	alt, _ := n.Attrs["alt"].(string)
	if src == "" {
		return
	}
	fmt.Fprintf(sb, `<img src=%q alt=%q/>`, src, alt)
}

func writeInjector(sb *strings.Builder, n doctree.Node) {
	resolved, _ := n.Attrs[doctree.AttrResolvedValue].(string)
	if resolved == "" {
		attrs := doctree.ParseInjectorAttrs(n.Attrs)
		resolved = "[" + attrs.VariableID + "]"
	}
	fmt.Fprintf(sb, `<span class="injector">%s</span>`, html.EscapeString(resolved))
}

func writeSignature(sb *strings.Builder, n doctree.Node) {
	label, _ := n.Attrs["roleLabel"].(string)
	if label == "" {
		label = "Signature"
	}
	fmt.Fprintf(sb,
		`<div class="signature-block"><div class="signature-line"></div><div class="signature-label">%s</div></div>`+"\n",
		html.EscapeString(label))
}

// markedText wraps the text in tags for each recognised mark. Unrecognised
// marks pass through unrendered.
func markedText(n doctree.Node) string {
	out := html.EscapeString(n.Text)
	for _, raw := range n.Marks {
		var mark struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &mark); err != nil {
			continue
		}
		switch mark.Type {
		case "bold":
			out = "<strong>" + out + "</strong>"
		case "italic":
			out = "<em>" + out + "</em>"
		case "underline":
			out = "<u>" + out + "</u>"
		case "strike":
			out = "<s>" + out + "</s>"
		case "code":
			out = "<code>" + out + "</code>"
		}
	}
	return out
}
