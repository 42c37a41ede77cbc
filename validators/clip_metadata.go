package validators

import (
	"encoding/json"
	"errors"

	"fdict/dictation-api/model"
)

const maxTitleLength = 200

// ErrDifficultyWordsInvalid signals a difficultyWords field that isn't valid JSON.
var ErrDifficultyWordsInvalid = errors.New("invalid JSON format for difficulty words")

type ClipMetadata struct {
	Title           string
	Description     string
	DifficultyLevel string
	SubtitleText    string
}

// ClipMetadataValidator aggregates all metadata problems into one field→message
// map so the caller can fix everything in a single round trip. Returns nil
// when the metadata is valid.
func ClipMetadataValidator(m ClipMetadata) map[string]string {
	fields := map[string]string{}

	if m.Title == "" {
		fields["title"] = "Title is required"
	} else if len(m.Title) > maxTitleLength {
		fields["title"] = "Title too long"
	}

	if !model.ValidDifficulty(m.DifficultyLevel) {
		fields["difficultyLevel"] = "Difficulty level must be one of BEGINNER, INTERMEDIATE, ADVANCED"
	}

	if m.SubtitleText == "" {
		fields["subtitleText"] = "Subtitle text is required"
	}

	if len(fields) == 0 {
		return nil
	}

	return fields
}

// ParseDifficultyWords decodes the optional JSON-encoded word list. An empty
// field is fine and yields nil.
func ParseDifficultyWords(raw string) (model.DifficultyWords, error) {
	if raw == "" {
		return nil, nil
	}

	var words model.DifficultyWords
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		return nil, ErrDifficultyWordsInvalid
	}

	return words, nil
}
