package model

import (
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyWordsValueAndScan(t *testing.T) {
	words := DifficultyWords{
		{Word: "could've", Translation: "hätte können"},
		{Word: "pivot", Explanation: "to turn around a fixed point"},
	}

	v, err := words.Value()
	require.NoError(t, err)

	var got DifficultyWords
	require.NoError(t, got.Scan(v))
	assert.Equal(t, words, got)
}

func TestDifficultyWordsEmptyValue(t *testing.T) {
	v, err := DifficultyWords{}.Value()
	require.NoError(t, err)
	assert.Equal(t, driver.Value(""), v)

	var got DifficultyWords
	require.NoError(t, got.Scan(""))
	assert.Nil(t, got)

	require.NoError(t, got.Scan(nil))
	assert.Nil(t, got)
}

func TestDifficultyWordsScanString(t *testing.T) {
	var got DifficultyWords
	require.NoError(t, got.Scan(`[{"word":"unagi"}]`))
	require.Len(t, got, 1)
	assert.Equal(t, "unagi", got[0].Word)
}

func TestDifficultyWordsScanRejectsOtherTypes(t *testing.T) {
	var got DifficultyWords
	assert.Error(t, got.Scan(42))
}
