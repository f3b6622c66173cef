package pitchdeck

import (
	"fmt"
	"strings"
)

// Mode selects the backend analysis strategy
type Mode int

const (
	// ModeSimple runs the single-pass analysis. It is the default because
	// it is cheaper and fails less often than the agent workflow.
	ModeSimple Mode = iota
	// ModeMultiAgent runs the multi-agent workflow with web search tools
	ModeMultiAgent
)

func (m Mode) String() string {
	switch m {
	case ModeSimple:
		return "simple"
	case ModeMultiAgent:
		return "multi-agent"
	default:
		return "unknown"
	}
}

// ParseMode converts a flag or config value into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "simple":
		return ModeSimple, nil
	case "multi-agent", "agents":
		return ModeMultiAgent, nil
	default:
		return ModeSimple, fmt.Errorf("unknown analysis mode %q (want simple or multi-agent)", s)
	}
}

// UploadResult is the server's answer to an upload. FileID is opaque and
// must be passed back unmodified.
type UploadResult struct {
	FileID      string `json:"file_id"`
	Filename    string `json:"filename"`
	TextPreview string `json:"text_preview"`
	WordCount   int    `json:"word_count"`
	Message     string `json:"message"`
}

// Claim is one factual assertion extracted from the deck
type Claim struct {
	Claim      string `json:"claim"`
	Category   string `json:"category"`
	Importance string `json:"importance"`
}

// VerificationResult pairs a claim with a free-form verification narrative.
// Claim is display text only and is not a key into AnalysisResult.Claims.
type VerificationResult struct {
	Claim  string `json:"claim"`
	Result string `json:"verification_result"`
}

// Summary holds the counters reported by the server. They are shown as-is
// and may disagree with the lengths of the result slices.
type Summary struct {
	TotalClaims        int `json:"total_claims"`
	VerifiedClaims     int `json:"verified_claims"`
	QuestionsGenerated int `json:"questions_generated"`
}

// AnalysisResult is the response shape shared by both analysis endpoints
type AnalysisResult struct {
	FileID              string               `json:"file_id"`
	Claims              []Claim              `json:"claims"`
	VerificationResults []VerificationResult `json:"verification_results"`
	Questions           []string             `json:"questions"`
	Summary             Summary              `json:"summary"`
	Method              string               `json:"method,omitempty"` // set by the agent workflow
}

// HealthStatus is returned by the health endpoint
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
