package pitchdeck

import "fmt"

// TransportError reports a failed call to the analysis service. The message
// is fixed per operation; response bodies are never parsed.
type TransportError struct {
	Op         string
	StatusCode int   // 0 when no response was received
	Err        error // underlying network error, if any
}

func (e *TransportError) Error() string {
	return e.Op
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Detail includes the status code or cause, for logs
func (e *TransportError) Detail() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// ValidationError reports input rejected before any request is made
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

const (
	opUpload       = "failed to upload pitch deck"
	opAnalyze      = "failed to analyze pitch deck"
	opAnalyzeAgent = "failed to analyze pitch deck with agents"
	opHealth       = "health check failed"
)
