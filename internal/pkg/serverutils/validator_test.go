package serverutils

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	type createReq struct {
		Name  string `validate:"required,min=3"`
		Email string `validate:"required,email"`
	}

	t.Run("valid passes", func(t *testing.T) {
		err := ValidateRequest(&createReq{Name: "Service Agreement", Email: "legal@example.com"})
		assert.NoError(t, err)
	})

	t.Run("failures produce a 400 listing each field", func(t *testing.T) {
		err := ValidateRequest(&createReq{Name: "ab"})

		var fe *fiber.Error
		assert.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Contains(t, fe.Message, "Name (min)")
		assert.Contains(t, fe.Message, "Email (required)")
	})
}
