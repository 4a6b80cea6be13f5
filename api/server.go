package api

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"

	"github.com/matt-g-everett/tweentx/tween"
)

// Api serves a JSON snapshot of the live timelines, for debugging shows. It
// reads published state only, never the scheduler the tick loop is mutating,
// so it is safe to run on its own goroutine.
type Api struct {
	source func() []tween.Status
	logger *slog.Logger
}

// NewApi creates an instance of an Api reading timeline state from source.
func NewApi(source func() []tween.Status, logger *slog.Logger) *Api {
	a := new(Api)
	a.source = source
	a.logger = logger
	return a
}

type timelineState struct {
	Duration       float64 `json:"duration"`
	FullDuration   float64 `json:"fullDuration"`
	Elapsed        float64 `json:"elapsed"`
	FullElapsed    float64 `json:"fullElapsed"`
	CompletedLoops int     `json:"completedLoops"`
	LoopType       string  `json:"loopType"`
	Complete       bool    `json:"complete"`
	Paused         bool    `json:"paused"`
	Reversed       bool    `json:"reversed"`
	Bindings       int     `json:"bindings"`
}

func (a *Api) handleTimelines(w http.ResponseWriter, _ *http.Request) {
	statuses := a.source()
	states := make([]timelineState, 0, len(statuses))
	for _, st := range statuses {
		fullDuration := st.FullDuration
		if math.IsInf(fullDuration, 1) {
			// Infinite loops; JSON has no +Inf.
			fullDuration = -1
		}
		states = append(states, timelineState{
			Duration:       st.Duration,
			FullDuration:   fullDuration,
			Elapsed:        st.Elapsed,
			FullElapsed:    st.FullElapsed,
			CompletedLoops: st.CompletedLoops,
			LoopType:       st.Loop.String(),
			Complete:       st.Complete,
			Paused:         st.Paused,
			Reversed:       st.Reversed,
			Bindings:       st.Bindings,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(states); err != nil {
		a.logger.Warn("failed to encode timeline snapshot", "err", err)
	}
}

// Serve listens on addr until the process exits.
func (a *Api) Serve(addr string) {
	http.HandleFunc("/timelines", a.handleTimelines)

	a.logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		a.logger.Error("api server stopped", "err", err)
	}
}
