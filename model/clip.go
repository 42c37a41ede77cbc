package model

import "time"

// Difficulty levels a clip can be tagged with.
const (
	DifficultyBeginner     = "BEGINNER"
	DifficultyIntermediate = "INTERMEDIATE"
	DifficultyAdvanced     = "ADVANCED"
)

// ValidDifficulty reports whether d is one of the known difficulty levels.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Every clip in the catalog is exactly 10 seconds long. The duration column
// exists so clients don't have to hardcode that, not because we probe files.
const ClipDurationSeconds = 10

type VideoClip struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	// Key of the object in the bucket. The public URL is derived from it,
	// stored alongside so the reconciler can match rows to objects without
	// parsing URLs back apart.
	StorageKey string `gorm:"index" json:"-"`
	ClipURL    string `gorm:"not null" json:"clipUrl"`

	DurationSeconds int             `json:"durationSeconds"`
	DifficultyLevel string          `gorm:"index;not null" json:"difficultyLevel"`
	SubtitleText    string          `gorm:"not null" json:"subtitleText"`
	DifficultyWords DifficultyWords `json:"difficultyWords"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
