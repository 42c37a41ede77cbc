package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"fdict/dictation-api/model"
	"fdict/dictation-api/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedClips inserts n clips with strictly increasing creation times.
func seedClips(t *testing.T, a *API, n int, difficulty string) []model.VideoClip {
	t.Helper()

	base := time.Now().Add(-time.Duration(n) * time.Minute)
	clips := make([]model.VideoClip, 0, n)

	for i := range n {
		clip := model.VideoClip{
			ID:              util.RandStr(12),
			Title:           fmt.Sprintf("Clip %d", i),
			StorageKey:      fmt.Sprintf("%d-%s.mp4", i, util.RandStr(8)),
			ClipURL:         fmt.Sprintf("https://clips.example.com/%d.mp4", i),
			DurationSeconds: model.ClipDurationSeconds,
			DifficultyLevel: difficulty,
			SubtitleText:    "How you doin'?",
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, a.DB.Create(&clip).Error)
		clips = append(clips, clip)
	}

	return clips
}

func listClips(query string) *http.Request {
	return httptestGet("/api/clips" + query)
}

func httptestGet(target string) *http.Request {
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	return req
}

func TestClipListInvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"limit zero", "?limit=0"},
		{"limit too big", "?limit=101"},
		{"limit not a number", "?limit=abc"},
		{"negative offset", "?offset=-1"},
		{"offset not a number", "?offset=ten"},
		{"unknown difficulty", "?difficulty=EXPERT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestAPI(t)
			seedClips(t, a, 1, model.DifficultyBeginner)

			w := doRequest(a, listClips(tt.query))

			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, "CLIP_LIST_INVALID_PARAMS", errorCode(t, w))
		})
	}
}

func TestClipListPagination(t *testing.T) {
	t.Run("has more pages", func(t *testing.T) {
		a, _ := newTestAPI(t)
		seedClips(t, a, 15, model.DifficultyBeginner)

		w := doRequest(a, listClips("?limit=10&offset=0"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := dataField(t, w)
		assert.Len(t, data["clips"], 10)

		p := data["pagination"].(map[string]any)
		assert.EqualValues(t, 15, p["total"])
		assert.EqualValues(t, 10, p["limit"])
		assert.EqualValues(t, 0, p["offset"])
		assert.Equal(t, true, p["hasMore"])
	})

	t.Run("last page", func(t *testing.T) {
		a, _ := newTestAPI(t)
		seedClips(t, a, 11, model.DifficultyBeginner)

		w := doRequest(a, listClips("?limit=10&offset=10"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := dataField(t, w)
		assert.Len(t, data["clips"], 1)

		p := data["pagination"].(map[string]any)
		assert.EqualValues(t, 11, p["total"])
		assert.Equal(t, false, p["hasMore"])
	})

	t.Run("defaults", func(t *testing.T) {
		a, _ := newTestAPI(t)
		seedClips(t, a, 12, model.DifficultyBeginner)

		w := doRequest(a, listClips(""))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := dataField(t, w)
		assert.Len(t, data["clips"], 10)

		p := data["pagination"].(map[string]any)
		assert.EqualValues(t, 10, p["limit"])
		assert.EqualValues(t, 0, p["offset"])
	})
}

func TestClipListOrder(t *testing.T) {
	a, _ := newTestAPI(t)
	seeded := seedClips(t, a, 3, model.DifficultyBeginner)

	w := doRequest(a, listClips("?limit=3"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	clips := dataField(t, w)["clips"].([]any)
	require.Len(t, clips, 3)

	// Newest first
	assert.Equal(t, seeded[2].ID, clips[0].(map[string]any)["id"])
	assert.Equal(t, seeded[1].ID, clips[1].(map[string]any)["id"])
	assert.Equal(t, seeded[0].ID, clips[2].(map[string]any)["id"])
}

func TestClipListDifficultyFilter(t *testing.T) {
	a, _ := newTestAPI(t)
	seedClips(t, a, 4, model.DifficultyBeginner)
	seedClips(t, a, 2, model.DifficultyAdvanced)

	w := doRequest(a, listClips("?difficulty=ADVANCED"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := dataField(t, w)
	clips := data["clips"].([]any)
	require.Len(t, clips, 2)

	for _, raw := range clips {
		assert.Equal(t, model.DifficultyAdvanced, raw.(map[string]any)["difficultyLevel"])
	}

	p := data["pagination"].(map[string]any)
	assert.EqualValues(t, 2, p["total"])
}
