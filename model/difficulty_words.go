package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DifficultyWord is one annotated word from a clip's subtitles.
type DifficultyWord struct {
	Word        string `json:"word"`
	Translation string `json:"translation,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// DifficultyWords is stored as a single JSON column. Order is preserved
// because the UI shows the words in subtitle order.
type DifficultyWords []DifficultyWord

// Value implements the driver.Valuer interface. It always returns a string
// so the column type can be inferred from the zero value.
func (w DifficultyWords) Value() (driver.Value, error) {
	if len(w) == 0 {
		return "", nil
	}

	b, err := json.Marshal(w)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Scan implements the sql.Scanner interface.
func (w *DifficultyWords) Scan(value any) error {
	if value == nil {
		*w = nil
		return nil
	}

	var b []byte

	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("failed to scan DifficultyWords, %v", value)
	}

	if len(b) == 0 {
		*w = nil
		return nil
	}

	return json.Unmarshal(b, w)
}
