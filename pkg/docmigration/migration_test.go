package docmigration

import (
	"testing"

	"contract-editor-be/pkg/doctree"

	"github.com/stretchr/testify/assert"
)

func TestDocumentVersion(t *testing.T) {
	assert.Equal(t, 1, DocumentVersion(doctree.Node{Type: doctree.TypeDoc}))
	assert.Equal(t, 2, DocumentVersion(doctree.Node{
		Type:  doctree.TypeDoc,
		Attrs: map[string]any{"version": float64(2)},
	}))
	assert.Equal(t, 1, DocumentVersion(doctree.Node{
		Type:  doctree.TypeDoc,
		Attrs: map[string]any{"version": "two"},
	}))
}

func TestNeedsMigration(t *testing.T) {
	r := Default()

	assert.True(t, r.NeedsMigration(doctree.Node{Type: doctree.TypeDoc}))
	assert.False(t, r.NeedsMigration(doctree.Node{
		Type:  doctree.TypeDoc,
		Attrs: map[string]any{"version": float64(CurrentVersion)},
	}))
}

func TestMigrateV1Document(t *testing.T) {
	doc := doctree.Node{
		Type: doctree.TypeDoc,
		Content: []doctree.Node{
			{Type: "variable", Attrs: map[string]any{"name": "client_name"}},
		},
	}

	out, err := Default().Migrate(doc)
	assert.NoError(t, err)
	assert.Equal(t, float64(CurrentVersion), out.Attrs["version"])

	injector := out.Content[0]
	assert.Equal(t, doctree.TypeInjector, injector.Type)
	assert.Equal(t, "client_name", injector.Attrs["variableId"])
	assert.Equal(t, doctree.InjectorTypeText, injector.Attrs["type"])

	// Source tree untouched.
	assert.Equal(t, "variable", doc.Content[0].Type)
	assert.Nil(t, doc.Attrs)
}

func TestMigrateV2ConditionList(t *testing.T) {
	doc := doctree.Node{
		Type:  doctree.TypeDoc,
		Attrs: map[string]any{"version": float64(2)},
		Content: []doctree.Node{
			{
				Type: doctree.TypeConditional,
				Attrs: map[string]any{
					"rules": []any{
						map[string]any{"id": "r1", "variableId": "status", "operator": "eq", "value": "active"},
					},
				},
			},
		},
	}

	out, err := Default().Migrate(doc)
	assert.NoError(t, err)

	cond := out.Content[0]
	conditions, ok := cond.Attrs["conditions"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "group", conditions["type"])
	assert.Equal(t, "AND", conditions["logic"])
	assert.Len(t, conditions["children"], 1)
	_, hasRules := cond.Attrs["rules"]
	assert.False(t, hasRules)
}

func TestMigrateCurrentVersionIsNoOp(t *testing.T) {
	doc := doctree.Node{
		Type:    doctree.TypeDoc,
		Attrs:   map[string]any{"version": float64(CurrentVersion)},
		Content: []doctree.Node{{Type: doctree.TypeParagraph}},
	}

	out, err := Default().Migrate(doc)
	assert.NoError(t, err)
	assert.Equal(t, doc.Content, out.Content)
}

func TestMigrateNewerDocumentFails(t *testing.T) {
	doc := doctree.Node{
		Type:  doctree.TypeDoc,
		Attrs: map[string]any{"version": float64(CurrentVersion + 1)},
	}

	_, err := Default().Migrate(doc)
	assert.Error(t, err)

	var migErr *MigrationError
	assert.ErrorAs(t, err, &migErr)
	assert.Equal(t, ErrKindNewerDocument, migErr.Kind)
}

func TestMigrateMissingStepFails(t *testing.T) {
	r := NewRegistry()
	r.Register(2, migrateV2ConditionLists)

	_, err := r.Migrate(doctree.Node{Type: doctree.TypeDoc}) // version 1, no 1→2 step

	var migErr *MigrationError
	assert.ErrorAs(t, err, &migErr)
	assert.Equal(t, ErrKindNoPath, migErr.Kind)
	assert.Equal(t, 1, migErr.FromVersion)
}
