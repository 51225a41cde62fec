package kernel_test

import (
	"testing"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid unique id", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		assert.False(t, id1.IsZero())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	const canonical = "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should accept supported forms", func(t *testing.T) {
		for _, in := range []string{
			canonical,
			"{550e8400-e29b-41d4-a716-446655440000}",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a716446655440000",
		} {
			id, err := kernel.UUIDFromString(in)
			require.NoError(t, err, in)
			assert.Equal(t, canonical, id.String())
		}
	})

	t.Run("should reject malformed ids as invalid values", func(t *testing.T) {
		for _, in := range []string{"", "order-1", "550e8400-e29b-41d4-a716"} {
			_, err := kernel.UUIDFromString(in)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
		}
	})

	t.Run("should reject the nil id", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUUID_Google(t *testing.T) {
	raw := uuid.New()
	id := kernel.UUIDFromGoogle(raw)

	assert.Equal(t, raw, id.Google())
	assert.Equal(t, raw.String(), id.String())
}

func TestUUID_Validate(t *testing.T) {
	var id kernel.UUID

	assert.True(t, id.IsZero())
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
}
