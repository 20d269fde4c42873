//go:build unit

package experience_test

import (
	"strings"
	"testing"

	"bookit/internal/domain/experience"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExperience(t *testing.T) {
	id := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		e, err := experience.NewExperience(id, "Sunrise Kayak Tour", "Udupi, Karnataka", "Paddle at dawn.", 999, "")
		require.NoError(t, err)
		assert.Equal(t, id, e.ID())
		assert.Equal(t, "Sunrise Kayak Tour", e.Name())
		assert.Equal(t, int64(999), e.PriceUnits())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		e, err := experience.NewExperience(id, "  Coffee Estate Trail  ", "", "", 1299, "")
		require.NoError(t, err)
		assert.Equal(t, "Coffee Estate Trail", e.Name())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := experience.NewExperience(id, "   ", "", "", 999, "")
		assert.ErrorIs(t, err, experience.ErrEmptyName)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := experience.NewExperience(id, strings.Repeat("a", 256), "", "", 999, "")
		assert.ErrorIs(t, err, experience.ErrNameTooLong)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := experience.NewExperience(id, "Sunrise Kayak Tour", "", "", -1, "")
		assert.ErrorIs(t, err, experience.ErrNegativePrice)
	})
}
