package export

import (
	"encoding/json"
	"testing"

	"contract-editor-be/pkg/doctree"

	"github.com/stretchr/testify/assert"
)

func TestHTMLBasicBlocks(t *testing.T) {
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			{Type: doctree.TypeHeading, Attrs: map[string]any{"level": float64(2)},
				Content: []doctree.Node{{Type: doctree.TypeText, Text: "Terms"}}},
			{Type: doctree.TypeParagraph,
				Content: []doctree.Node{{Type: doctree.TypeText, Text: "Hello <world>"}}},
			{Type: doctree.TypeParagraph},
			{Type: doctree.TypePageBreak},
		},
	}

	out := HTML(doc)
	assert.Contains(t, out, "<h2>Terms</h2>")
	assert.Contains(t, out, "<p>Hello &lt;world&gt;</p>")
	assert.Contains(t, out, "<p>&nbsp;</p>")
	assert.Contains(t, out, "page-break-after")
}

func TestHTMLInjectorUsesResolvedValue(t *testing.T) {
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			{Type: doctree.TypeInjector, Attrs: map[string]any{
				"variableId":            "client_name",
				doctree.AttrResolvedValue: "Acme S.L.",
			}},
			{Type: doctree.TypeInjector, Attrs: map[string]any{"variableId": "pending"}},
		},
	}

	out := HTML(doc)
	assert.Contains(t, out, `<span class="injector">Acme S.L.</span>`)
	assert.Contains(t, out, `<span class="injector">[pending]</span>`)
}

func TestHTMLMarks(t *testing.T) {
	bold, _ := json.Marshal(map[string]string{"type": "bold"})
	italic, _ := json.Marshal(map[string]string{"type": "italic"})

	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			{Type: doctree.TypeParagraph, Content: []doctree.Node{
				{Type: doctree.TypeText, Text: "important", Marks: []json.RawMessage{bold, italic}},
			}},
		},
	}

	assert.Contains(t, HTML(doc), "<em><strong>important</strong></em>")
}

func TestHTMLListsAndTables(t *testing.T) {
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			{Type: doctree.TypeBulletList, Content: []doctree.Node{
				{Type: doctree.TypeListItem, Content: []doctree.Node{
					{Type: doctree.TypeParagraph, Content: []doctree.Node{{Type: doctree.TypeText, Text: "one"}}},
				}},
			}},
			{Type: doctree.TypeTable, Content: []doctree.Node{
				{Type: doctree.TypeTableRow, Content: []doctree.Node{
					{Type: doctree.TypeTableCell, Content: []doctree.Node{
						{Type: doctree.TypeParagraph, Content: []doctree.Node{{Type: doctree.TypeText, Text: "cell"}}},
					}},
				}},
			}},
		},
	}

	out := HTML(doc)
	assert.Contains(t, out, "<ul><li><p>one</p>\n</li></ul>")
	assert.Contains(t, out, "<table><tr><td><p>cell</p>\n</td></tr></table>")
}

func TestHTMLSignatureBlock(t *testing.T) {
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			{Type: doctree.TypeSignature, Attrs: map[string]any{"roleLabel": "Buyer"}},
		},
	}

	out := HTML(doc)
	assert.Contains(t, out, `class="signature-block"`)
	assert.Contains(t, out, "Buyer")
}

func TestHTMLUnknownNodeRendersChildren(t *testing.T) {
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			{Type: "futureWidget", Content: []doctree.Node{
				{Type: doctree.TypeParagraph, Content: []doctree.Node{{Type: doctree.TypeText, Text: "still here"}}},
			}},
		},
	}

	assert.Contains(t, HTML(doc), "<p>still here</p>")
}
