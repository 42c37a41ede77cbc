package validators

import (
	"testing"

	"fdict/dictation-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListClipsQueryValidator(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q, err := ListClipsQueryValidator("", "", "")

		require.NoError(t, err)
		assert.Equal(t, 10, q.Limit)
		assert.Equal(t, 0, q.Offset)
		assert.Empty(t, q.Difficulty)
	})

	t.Run("accepts bounds", func(t *testing.T) {
		q, err := ListClipsQueryValidator("100", "250", model.DifficultyAdvanced)

		require.NoError(t, err)
		assert.Equal(t, 100, q.Limit)
		assert.Equal(t, 250, q.Offset)
		assert.Equal(t, model.DifficultyAdvanced, q.Difficulty)
	})

	tests := []struct {
		name       string
		limit      string
		offset     string
		difficulty string
	}{
		{"limit zero", "0", "", ""},
		{"limit over max", "101", "", ""},
		{"limit not numeric", "ten", "", ""},
		{"negative offset", "", "-1", ""},
		{"offset not numeric", "", "x", ""},
		{"unknown difficulty", "", "", "EXPERT"},
		{"lowercase difficulty", "", "", "beginner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ListClipsQueryValidator(tt.limit, tt.offset, tt.difficulty)
			assert.Error(t, err)
		})
	}
}
