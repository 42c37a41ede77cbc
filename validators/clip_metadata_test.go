package validators

import (
	"strings"
	"testing"

	"fdict/dictation-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipMetadataValidator(t *testing.T) {
	valid := ClipMetadata{
		Title:           "The One With the Test",
		DifficultyLevel: model.DifficultyBeginner,
		SubtitleText:    "Hello",
	}

	assert.Nil(t, ClipMetadataValidator(valid))

	t.Run("aggregates all field errors", func(t *testing.T) {
		fields := ClipMetadataValidator(ClipMetadata{DifficultyLevel: "NOPE"})

		require.Len(t, fields, 3)
		assert.Contains(t, fields, "title")
		assert.Contains(t, fields, "difficultyLevel")
		assert.Contains(t, fields, "subtitleText")
	})

	t.Run("title length cap", func(t *testing.T) {
		m := valid
		m.Title = strings.Repeat("a", 200)
		assert.Nil(t, ClipMetadataValidator(m))

		m.Title = strings.Repeat("a", 201)
		fields := ClipMetadataValidator(m)
		assert.Contains(t, fields, "title")
	})

	t.Run("description is optional", func(t *testing.T) {
		m := valid
		m.Description = ""
		assert.Nil(t, ClipMetadataValidator(m))
	})
}

func TestParseDifficultyWords(t *testing.T) {
	words, err := ParseDifficultyWords("")
	assert.NoError(t, err)
	assert.Nil(t, words)

	words, err = ParseDifficultyWords(`[{"word":"break","translation":"Pause"},{"word":"doin"}]`)
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, "break", words[0].Word)
	assert.Equal(t, "Pause", words[0].Translation)
	assert.Equal(t, "doin", words[1].Word)

	_, err = ParseDifficultyWords("{truncated")
	assert.Equal(t, ErrDifficultyWordsInvalid, err)
}
