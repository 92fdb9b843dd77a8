// Package platform holds the pieces shared by the terminal and window
// front-ends.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dapper-dasher/internal/core"
	"github.com/vovakirdan/dapper-dasher/internal/storage"
)

// Recorder persists finished runs. A nil store disables persistence and
// store errors are logged, never returned, so a broken database cannot
// stop a session.
type Recorder struct {
	store  *storage.Store
	logger *log.Logger
	saved  bool // Current session already written
}

// NewRecorder creates a recorder. Both arguments may be nil.
func NewRecorder(store *storage.Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{store: store, logger: logger}
}

// Begin marks the start of a new session.
func (r *Recorder) Begin() {
	r.saved = false
}

// Finish records the session once it reaches a terminal outcome.
// It is safe to call every frame.
func (r *Recorder) Finish(variantID string, st core.GameState) {
	if !st.GameOver() {
		return
	}
	r.save(variantID, st, outcomeName(st.Outcome))
}

// Quit records a session abandoned while still running. Sessions that
// never advanced are not recorded.
func (r *Recorder) Quit(variantID string, st core.GameState) {
	if st.GameOver() || st.Survived == 0 {
		return
	}
	r.save(variantID, st, storage.OutcomeQuit)
}

func (r *Recorder) save(variantID string, st core.GameState, outcome string) {
	if r.saved {
		return
	}
	r.saved = true

	r.logger.Info("run finished",
		"variant", variantID,
		"outcome", outcome,
		"score", st.Score,
		"survived", st.Survived,
	)

	if r.store == nil {
		return
	}
	_, err := r.store.SaveRun(storage.Run{
		VariantID: variantID,
		Outcome:   outcome,
		Score:     st.Score,
		Survived:  st.Survived,
	})
	if err != nil {
		r.logger.Warn("could not save run", "variant", variantID, "error", err)
	}
}

func outcomeName(o core.Outcome) string {
	if o == core.OutcomeWon {
		return storage.OutcomeWon
	}
	return storage.OutcomeLost
}
