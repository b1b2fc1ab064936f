package bdphone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bdphone/pkg/bdphone"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("cross-format equivalence", func(t *testing.T) {
		t.Parallel()
		inputs := []string{
			"01712345678",
			"8801712345678",
			"+8801712345678",
			"+880 17 1234 5678",
			"017-1234-5678",
		}

		for _, phone := range inputs {
			got, ok := bdphone.Normalize(phone)
			require.True(t, ok, "should normalize: %s", phone)
			assert.Equal(t, "+8801712345678", got, phone)
		}
	})

	t.Run("idempotent fixed point", func(t *testing.T) {
		t.Parallel()
		valid := []string{
			"01712345678",
			"0212345678",
			"0311234567",
			"8801912345678",
		}

		for _, phone := range valid {
			once, ok := bdphone.Normalize(phone)
			require.True(t, ok, phone)
			twice, ok := bdphone.Normalize(once)
			require.True(t, ok, once)
			assert.Equal(t, once, twice, "re-normalizing must be a no-op: %s", phone)
		}
	})

	t.Run("landline canonical forms", func(t *testing.T) {
		t.Parallel()
		got, ok := bdphone.Normalize("0212345678")
		require.True(t, ok)
		assert.Equal(t, "+880212345678", got)

		got, ok = bdphone.Normalize("0311234567")
		require.True(t, ok)
		assert.Equal(t, "+880311234567", got)
	})

	t.Run("invalid input yields no value", func(t *testing.T) {
		t.Parallel()
		for _, phone := range []string{"", "garbage", "0191428753", "01234567890"} {
			got, ok := bdphone.Normalize(phone)
			assert.False(t, ok, phone)
			assert.Empty(t, got, phone)
		}
	})
}
