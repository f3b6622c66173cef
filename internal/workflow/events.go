package workflow

import (
	"context"

	"github.com/mcao2/deckcheck/internal/pitchdeck"
)

// Event is the completion of a Job
type Event interface {
	event()
}

// UploadDone completes the upload step
type UploadDone struct {
	Result *pitchdeck.UploadResult
	Err    error
}

// AnalyzeDone completes the analyze step
type AnalyzeDone struct {
	Result *pitchdeck.AnalysisResult
	Err    error
}

func (UploadDone) event()  {}
func (AnalyzeDone) event() {}

// Job performs one network step. It captures its inputs when it is built
// and never reads or writes controller state, so it may run on any
// goroutine; its Event must be fed back through Controller.Handle.
type Job func(ctx context.Context) Event
