package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/tweentx/tween"
)

func TestTimelinesSnapshotJSON(t *testing.T) {
	source := func() []tween.Status {
		return []tween.Status{{
			Duration:     2,
			FullDuration: math.Inf(1),
			FullElapsed:  3.5,
			Loop:         tween.LoopYoyo,
			Bindings:     1,
		}}
	}
	a := NewApi(source, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	a.handleTimelines(rec, httptest.NewRequest(http.MethodGet, "/timelines", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var states []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &states))
	require.Len(t, states, 1)
	assert.Equal(t, -1.0, states[0]["fullDuration"], "infinite loops have no JSON representation")
	assert.Equal(t, 3.5, states[0]["fullElapsed"])
	assert.Equal(t, "yoyo", states[0]["loopType"])
}
