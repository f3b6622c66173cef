package workflow

import (
	"context"
	"errors"
	"log"

	"github.com/mcao2/deckcheck/internal/pitchdeck"
)

var (
	// ErrNoFile is returned by Submit when no document is selected
	ErrNoFile = &pitchdeck.ValidationError{Message: "Please select a PDF file"}
	// ErrBusy is returned by Submit while a submission is in flight
	ErrBusy = errors.New("analysis already in progress")
)

// Service is the remote side of the workflow. *pitchdeck.Client implements it.
type Service interface {
	Upload(ctx context.Context, doc pitchdeck.Document) (*pitchdeck.UploadResult, error)
	Analyze(ctx context.Context, fileID string, mode pitchdeck.Mode) (*pitchdeck.AnalysisResult, error)
}

// Controller owns the workflow state. It must be driven from a single
// goroutine; only the Jobs it hands out may run elsewhere.
type Controller struct {
	svc    Service
	logger *log.Logger
	state  State

	// mode captured at Submit, used by the analyze step of that submission
	submitMode pitchdeck.Mode
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger used for transition lines
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController creates an idle controller with the given default mode
func NewController(svc Service, mode pitchdeck.Mode, opts ...Option) *Controller {
	c := &Controller{
		svc:    svc,
		logger: log.Default(),
		state:  State{Phase: PhaseIdle, Mode: mode},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot for rendering
func (c *Controller) State() State {
	return c.state
}

// SelectFile replaces the selected document. Any previous result or error
// is dropped; a finished workflow goes back to Idle, an in-flight one keeps
// its phase.
func (c *Controller) SelectFile(doc pitchdeck.Document) {
	c.state.File = &doc
	c.state.Result = nil
	c.state.Upload = nil
	c.state.Err = ""
	if c.state.Phase.Terminal() {
		c.transition(PhaseIdle)
	}
}

// SetMode changes the mode used by the next submission
func (c *Controller) SetMode(mode pitchdeck.Mode) {
	c.state.Mode = mode
}

// ToggleMode flips between simple and multi-agent analysis
func (c *Controller) ToggleMode() pitchdeck.Mode {
	if c.state.Mode == pitchdeck.ModeMultiAgent {
		c.SetMode(pitchdeck.ModeSimple)
	} else {
		c.SetMode(pitchdeck.ModeMultiAgent)
	}
	return c.state.Mode
}

// Submit starts a fresh upload of the selected document and returns the
// upload job. It leaves the state untouched and returns ErrNoFile or ErrBusy
// when the submission cannot start.
func (c *Controller) Submit() (Job, error) {
	if c.state.File == nil {
		return nil, ErrNoFile
	}
	if c.state.Phase.InFlight() {
		return nil, ErrBusy
	}

	c.state.Err = ""
	c.state.Result = nil
	c.state.Upload = nil
	c.submitMode = c.state.Mode
	c.transition(PhaseUploading)

	return c.uploadJob(*c.state.File), nil
}

// Handle applies a job completion and returns the next job, or nil when the
// submission is over. Events that do not match the current phase are
// dropped.
func (c *Controller) Handle(ev Event) Job {
	switch ev := ev.(type) {
	case UploadDone:
		if c.state.Phase != PhaseUploading {
			c.logger.Printf("workflow: ignoring upload completion in %s", c.state.Phase)
			return nil
		}
		if ev.Err != nil {
			c.fail(ev.Err)
			return nil
		}
		if ev.Result == nil {
			c.fail(errors.New("empty upload response"))
			return nil
		}
		c.state.Upload = ev.Result
		c.transition(PhaseAnalyzing)
		return c.analyzeJob(ev.Result.FileID, c.submitMode)

	case AnalyzeDone:
		if c.state.Phase != PhaseAnalyzing {
			c.logger.Printf("workflow: ignoring analyze completion in %s", c.state.Phase)
			return nil
		}
		if ev.Err != nil {
			c.fail(ev.Err)
			return nil
		}
		if ev.Result == nil {
			c.fail(errors.New("empty analysis response"))
			return nil
		}
		c.state.Result = ev.Result
		c.transition(PhaseDone)
	}
	return nil
}

// Run submits and drives the jobs to completion on the calling goroutine
func (c *Controller) Run(ctx context.Context) error {
	job, err := c.Submit()
	if err != nil {
		return err
	}
	for job != nil {
		job = c.Handle(job(ctx))
	}
	if c.state.Phase == PhaseFailed {
		return errors.New(c.state.Err)
	}
	return nil
}

func (c *Controller) uploadJob(doc pitchdeck.Document) Job {
	svc := c.svc
	return func(ctx context.Context) Event {
		result, err := svc.Upload(ctx, doc)
		return UploadDone{Result: result, Err: err}
	}
}

func (c *Controller) analyzeJob(fileID string, mode pitchdeck.Mode) Job {
	svc := c.svc
	return func(ctx context.Context) Event {
		result, err := svc.Analyze(ctx, fileID, mode)
		return AnalyzeDone{Result: result, Err: err}
	}
}

func (c *Controller) fail(err error) {
	detail := err.Error()
	var te *pitchdeck.TransportError
	if errors.As(err, &te) {
		detail = te.Detail()
	}
	c.logger.Printf("workflow: %s failed: %s", c.state.Phase, detail)

	c.state.Result = nil
	c.state.Upload = nil
	c.state.Err = errorMessage(err)
	c.transition(PhaseFailed)
}

func (c *Controller) transition(to Phase) {
	if from := c.state.Phase; from != to {
		c.logger.Printf("workflow: %s -> %s (mode=%s)", from, to, c.submitMode)
	}
	c.state.Phase = to
}

// errorMessage reduces err to the text shown to the user
func errorMessage(err error) string {
	var te *pitchdeck.TransportError
	if errors.As(err, &te) {
		return te.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "an error occurred"
}
