package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusByKind(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{Validation("bad"), fiber.StatusBadRequest},
		{BadRequest("bad"), fiber.StatusBadRequest},
		{Unauthorized(CodeUnauthorized, "nope"), fiber.StatusUnauthorized},
		{Forbidden(CodeForbidden, "nope"), fiber.StatusForbidden},
		{NotFound("missing"), fiber.StatusNotFound},
		{Conflict(CodeDuplicateEntry, "dup"), fiber.StatusConflict},
		{Internal(errors.New("boom")), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status(), "code %s", tc.err.Code)
	}
}

func TestFromNormalizesUnknownErrors(t *testing.T) {
	ae := From(errors.New("disk on fire"))
	assert.Equal(t, KindInternal, ae.Kind)
	assert.Equal(t, CodeInternal, ae.Code)
	// the raw message stays on the wrapped error, not the public one
	assert.Equal(t, "internal server error", ae.Message)
}

func TestFromUnwrapsThroughWrapping(t *testing.T) {
	original := NotFound("store not found")
	wrapped := fmt.Errorf("loading tenant: %w", original)

	ae := From(wrapped)
	require.Equal(t, KindNotFound, ae.Kind)
	assert.Equal(t, "store not found", ae.Message)
}

func TestWithDetailsCopies(t *testing.T) {
	base := NotFound("store not found")
	detailed := base.WithDetails(fiber.Map{"subdomain": "cozy"})

	assert.Nil(t, base.Details)
	assert.NotNil(t, detailed.Details)
	assert.Equal(t, base.Message, detailed.Message)
}
