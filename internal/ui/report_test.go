package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/mcao2/deckcheck/internal/pitchdeck"
)

func TestRenderReportSections(t *testing.T) {
	upload := &pitchdeck.UploadResult{FileID: "f1", Filename: "acme.pdf", WordCount: 12345}
	result := sampleResult()
	result.Method = "multi-agent"

	out := RenderReport(result, upload, DefaultStyles(), 100)

	order := []string{
		"acme.pdf · 12,345 words · method: multi-agent",
		"Claims Extracted",
		"Verification Results",
		"No public source confirms this figure.",
		"Questions to Ask the Founder",
		"1. Q1",
		"2. Q2",
	}
	last := -1
	for _, want := range order {
		idx := strings.Index(out, want)
		if idx < 0 {
			t.Fatalf("expected %q in report", want)
		}
		if idx < last {
			t.Errorf("expected %q after previous section", want)
		}
		last = idx
	}
}

func TestRenderReportEmptyLists(t *testing.T) {
	result := &pitchdeck.AnalysisResult{
		FileID:  "f1",
		Summary: pitchdeck.Summary{TotalClaims: 9, VerifiedClaims: 3, QuestionsGenerated: 2},
	}

	out := RenderReport(result, nil, DefaultStyles(), 100)

	// counters are shown as received even when the lists disagree
	for _, want := range []string{"9", "3", "2", "No claims were extracted", "No questions were generated"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in report", want)
		}
	}
}

func TestRenderReportNil(t *testing.T) {
	if out := RenderReport(nil, nil, DefaultStyles(), 80); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestRenderReportNarrowWidth(t *testing.T) {
	out := RenderReport(sampleResult(), nil, DefaultStyles(), 5)
	if !strings.Contains(out, "Questions to Ask the Founder") {
		t.Errorf("expected report to render at minimum width")
	}
}

func TestQuestionsText(t *testing.T) {
	got := QuestionsText([]string{"Who are your competitors?", "What is your burn rate?"})
	want := "1. Who are your competitors?\n2. What is your burn rate?\n"
	if got != want {
		t.Errorf("QuestionsText() = %q, want %q", got, want)
	}

	if got := QuestionsText(nil); got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}

func TestFormatCount(t *testing.T) {
	tests := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
	}
	for n, want := range tests {
		if got := formatCount(n); got != want {
			t.Errorf("formatCount(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := map[int64]string{
		512:             "512 B",
		2048:            "2 KB",
		5 * 1024 * 1024: "5.0 MB",
	}
	for n, want := range tests {
		if got := formatSize(n); got != want {
			t.Errorf("formatSize(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}
	got := Truncate("a much longer claim", 8)
	if runewidth.StringWidth(got) > 8 || !strings.HasSuffix(got, "…") {
		t.Errorf("expected truncation to 8 cells with ellipsis, got %q", got)
	}
}
