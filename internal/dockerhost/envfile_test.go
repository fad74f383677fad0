package dockerhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvFile(t *testing.T) {
	t.Parallel()

	t.Run("sorted by name", func(t *testing.T) {
		t.Parallel()

		got := EnvFile(map[string]string{
			"ZULU_KEY":  "z",
			"ALPHA_KEY": "a",
			"MIKE_KEY":  "m",
		})
		assert.Equal(t, "ALPHA_KEY=\"a\"\nMIKE_KEY=\"m\"\nZULU_KEY=\"z\"\n", got)
	})

	t.Run("quotes escaped", func(t *testing.T) {
		t.Parallel()

		got := EnvFile(map[string]string{"GREETING": `say "hi"`})
		assert.Equal(t, "GREETING=\"say \\\"hi\\\"\"\n", got)
	})

	t.Run("empty map", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, EnvFile(nil))
	})
}
