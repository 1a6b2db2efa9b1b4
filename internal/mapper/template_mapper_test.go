package mapper

import (
	"testing"
	"time"

	"contract-editor-be/internal/entity"
	"contract-editor-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestTemplateMapperToEntity(t *testing.T) {
	m := NewTemplateMapper(NewTagMapper())

	t.Run("nil in nil out", func(t *testing.T) {
		assert.Nil(t, m.ToEntity(nil))
		assert.Nil(t, m.ToModel(nil))
	})

	t.Run("zero updated_at maps to nil pointer", func(t *testing.T) {
		e := m.ToEntity(&model.Template{Id: uuid.New(), Name: "NDA"})
		assert.Nil(t, e.UpdatedAt)
	})

	t.Run("round trip carries tags and folder", func(t *testing.T) {
		folderId := uuid.New()
		updated := time.Now()
		src := &model.Template{
			Id:        uuid.New(),
			Name:      "Service Agreement",
			FolderId:  &folderId,
			UserId:    uuid.New(),
			Tags:      []*model.Tag{{Id: uuid.New(), Name: "legal", Color: "#ff0000"}},
			UpdatedAt: updated,
		}

		e := m.ToEntity(src)
		assert.Equal(t, src.Name, e.Name)
		assert.Equal(t, &folderId, e.FolderId)
		assert.Len(t, e.Tags, 1)
		assert.Equal(t, "legal", e.Tags[0].Name)
		assert.NotNil(t, e.UpdatedAt)

		back := m.ToModel(e)
		assert.Equal(t, src.Id, back.Id)
		assert.Equal(t, src.UserId, back.UserId)
		assert.Len(t, back.Tags, 1)
	})
}

func TestTemplateVersionMapperContent(t *testing.T) {
	m := NewTemplateVersionMapper()

	content := []byte(`{"type":"doc","content":[]}`)
	e := m.ToEntity(&model.TemplateVersion{
		Id:            uuid.New(),
		TemplateId:    uuid.New(),
		VersionNumber: 2,
		Status:        entity.VersionStatusDraft,
		Content:       datatypes.JSON(content),
		FormatVersion: 3,
	})

	assert.Equal(t, content, e.Content)
	assert.Equal(t, entity.VersionStatusDraft, e.Status)
	assert.Equal(t, 3, e.FormatVersion)

	back := m.ToModel(e)
	assert.Equal(t, content, []byte(back.Content))
}
