package validators

import (
	"errors"
	"strconv"

	"fdict/dictation-api/model"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type ListClipsQuery struct {
	Limit      int
	Offset     int
	Difficulty string
}

// ListClipsQueryValidator parses and bounds-checks the clip listing query
// parameters, applying defaults for the ones left empty. It runs before any
// database work so bad requests never cost a query.
func ListClipsQueryValidator(limitStr, offsetStr, difficulty string) (ListClipsQuery, error) {
	q := ListClipsQuery{Limit: defaultListLimit}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return q, errors.New("limit is not a valid integer")
		}

		if limit < 1 || limit > maxListLimit {
			return q, errors.New("limit must be between 1 and 100")
		}

		q.Limit = limit
	}

	if offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return q, errors.New("offset is not a valid integer")
		}

		if offset < 0 {
			return q, errors.New("offset can't be negative")
		}

		q.Offset = offset
	}

	if difficulty != "" {
		if !model.ValidDifficulty(difficulty) {
			return q, errors.New("difficulty must be one of BEGINNER, INTERMEDIATE, ADVANCED")
		}

		q.Difficulty = difficulty
	}

	return q, nil
}
