package workflow

import "github.com/mcao2/deckcheck/internal/pitchdeck"

// Phase is the position of the controller in the upload/analyze sequence
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseUploading
	PhaseAnalyzing
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseUploading:
		return "Uploading"
	case PhaseAnalyzing:
		return "Analyzing"
	case PhaseDone:
		return "Done"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// InFlight reports whether a submission is waiting on the network
func (p Phase) InFlight() bool {
	return p == PhaseUploading || p == PhaseAnalyzing
}

// Terminal reports whether the last submission has finished
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseFailed
}

// State is a snapshot of the controller for rendering.
//
// Result is set only in PhaseDone and Err only in PhaseFailed.
type State struct {
	Phase  Phase
	File   *pitchdeck.Document
	Mode   pitchdeck.Mode
	Result *pitchdeck.AnalysisResult
	Err    string

	// Upload is the upload answer of the current submission, kept for the
	// report header. Cleared together with Result.
	Upload *pitchdeck.UploadResult
}

// CanSubmit reports whether Submit would be accepted
func (s State) CanSubmit() bool {
	return s.File != nil && !s.Phase.InFlight()
}
