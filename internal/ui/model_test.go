package ui

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mcao2/deckcheck/internal/config"
	"github.com/mcao2/deckcheck/internal/pitchdeck"
	"github.com/mcao2/deckcheck/internal/workflow"
)

type fakeService struct {
	uploadErr  error
	analyzeErr error
	result     *pitchdeck.AnalysisResult

	uploads int
	modes   []pitchdeck.Mode
}

func (f *fakeService) Upload(ctx context.Context, doc pitchdeck.Document) (*pitchdeck.UploadResult, error) {
	f.uploads++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &pitchdeck.UploadResult{FileID: "f1", Filename: doc.Name, WordCount: 1234}, nil
}

func (f *fakeService) Analyze(ctx context.Context, fileID string, mode pitchdeck.Mode) (*pitchdeck.AnalysisResult, error) {
	f.modes = append(f.modes, mode)
	if f.analyzeErr != nil {
		return nil, f.analyzeErr
	}
	return f.result, nil
}

func sampleResult() *pitchdeck.AnalysisResult {
	return &pitchdeck.AnalysisResult{
		FileID: "f1",
		Claims: []pitchdeck.Claim{
			{Claim: "ARR of $2M", Category: "traction", Importance: "high"},
		},
		VerificationResults: []pitchdeck.VerificationResult{
			{Claim: "ARR of $2M", Result: "No public source confirms this figure."},
		},
		Questions: []string{"Q1", "Q2"},
		Summary:   pitchdeck.Summary{TotalClaims: 1, VerifiedClaims: 1, QuestionsGenerated: 2},
	}
}

func writeDeck(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("%PDF-1.4\n%%EOF\n"), 0644); err != nil {
		t.Fatalf("failed to write deck: %v", err)
	}
	return path
}

func newTestModel(t *testing.T, svc *fakeService) *Model {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	ctrl := workflow.NewController(svc, pitchdeck.ModeSimple, workflow.WithLogger(log.New(io.Discard, "", 0)))
	m := NewModel(cfg, ctrl)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 200})
	return m
}

func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// finish runs workflow commands until the chain ends
func finish(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg, ok := cmd().(JobDoneMsg)
		if !ok {
			t.Fatalf("expected JobDoneMsg, got %T", msg)
		}
		_, cmd = m.Update(msg)
	}
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t, &fakeService{})
	view := m.View()
	if !strings.Contains(view, "Analyze Pitch Deck") {
		t.Errorf("expected idle caption in view")
	}
	if !strings.Contains(view, "No file selected") {
		t.Errorf("expected empty file line in view")
	}
	if !strings.Contains(view, "[ ] Use Advanced Multi-Agent Analysis") {
		t.Errorf("expected unchecked mode line in view")
	}
}

func TestButtonCaption(t *testing.T) {
	tests := []struct {
		phase workflow.Phase
		mode  pitchdeck.Mode
		want  string
	}{
		{workflow.PhaseIdle, pitchdeck.ModeSimple, "Analyze Pitch Deck"},
		{workflow.PhaseUploading, pitchdeck.ModeSimple, "Uploading..."},
		{workflow.PhaseUploading, pitchdeck.ModeMultiAgent, "Uploading..."},
		{workflow.PhaseAnalyzing, pitchdeck.ModeSimple, "Analyzing with AI..."},
		{workflow.PhaseAnalyzing, pitchdeck.ModeMultiAgent, "Analyzing with Multi-Agent AI..."},
		{workflow.PhaseDone, pitchdeck.ModeMultiAgent, "Analyze Pitch Deck"},
		{workflow.PhaseFailed, pitchdeck.ModeSimple, "Analyze Pitch Deck"},
	}

	for _, tt := range tests {
		got := ButtonCaption(workflow.State{Phase: tt.phase, Mode: tt.mode})
		if got != tt.want {
			t.Errorf("ButtonCaption(%v, %v) = %q, want %q", tt.phase, tt.mode, got, tt.want)
		}
	}
}

func TestSubmitWithoutFileShowsHint(t *testing.T) {
	svc := &fakeService{result: sampleResult()}
	m := newTestModel(t, svc)

	if cmd := press(m, "enter"); cmd != nil {
		t.Errorf("expected no command without a file")
	}
	if m.ctrl.State().Phase != workflow.PhaseIdle {
		t.Errorf("expected phase to stay idle, got %v", m.ctrl.State().Phase)
	}
	if svc.uploads != 0 {
		t.Errorf("expected no upload, got %d", svc.uploads)
	}
	if !strings.Contains(m.View(), "Please select a PDF file") {
		t.Errorf("expected hint in view")
	}
}

func TestSubmitFlow(t *testing.T) {
	svc := &fakeService{result: sampleResult()}
	m := newTestModel(t, svc)
	m.selectPath(writeDeck(t, "acme.pdf"))

	if !strings.Contains(m.View(), "acme.pdf") {
		t.Fatalf("expected selected file in view")
	}

	cmd := press(m, "enter")
	if cmd == nil {
		t.Fatal("expected upload command")
	}
	if m.ctrl.State().Phase != workflow.PhaseUploading {
		t.Fatalf("expected uploading, got %v", m.ctrl.State().Phase)
	}
	if !strings.Contains(m.View(), "Uploading...") {
		t.Errorf("expected uploading caption")
	}

	// enter while busy does nothing
	if again := press(m, "enter"); again != nil {
		t.Errorf("expected no command while uploading")
	}

	_, cmd = m.Update(cmd())
	if m.ctrl.State().Phase != workflow.PhaseAnalyzing {
		t.Fatalf("expected analyzing, got %v", m.ctrl.State().Phase)
	}
	if !strings.Contains(m.View(), "Analyzing with AI...") {
		t.Errorf("expected analyzing caption")
	}

	finish(t, m, cmd)

	if m.ctrl.State().Phase != workflow.PhaseDone {
		t.Fatalf("expected done, got %v", m.ctrl.State().Phase)
	}
	if svc.uploads != 1 {
		t.Errorf("expected 1 upload, got %d", svc.uploads)
	}

	view := m.View()
	for _, want := range []string{"Claims Extracted", "Verification Results", "Questions to Ask the Founder", "1. Q1", "2. Q2"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in report view", want)
		}
	}
	if strings.Index(view, "1. Q1") > strings.Index(view, "2. Q2") {
		t.Errorf("expected questions in order")
	}
}

func TestMultiAgentFlow(t *testing.T) {
	svc := &fakeService{result: sampleResult()}
	m := newTestModel(t, svc)
	m.selectPath(writeDeck(t, "acme.pdf"))

	press(m, "m")
	if !strings.Contains(m.View(), "[x] Use Advanced Multi-Agent Analysis") {
		t.Errorf("expected checked mode line")
	}

	cmd := press(m, "enter")
	_, cmd = m.Update(cmd())
	if !strings.Contains(m.View(), "Analyzing with Multi-Agent AI...") {
		t.Errorf("expected multi-agent caption")
	}
	finish(t, m, cmd)

	if len(svc.modes) != 1 || svc.modes[0] != pitchdeck.ModeMultiAgent {
		t.Errorf("expected one multi-agent analysis, got %v", svc.modes)
	}
}

func TestFailureShowsError(t *testing.T) {
	svc := &fakeService{
		analyzeErr: &pitchdeck.TransportError{Op: "failed to analyze pitch deck", StatusCode: 500},
	}
	m := newTestModel(t, svc)
	m.selectPath(writeDeck(t, "acme.pdf"))

	finish(t, m, press(m, "enter"))

	s := m.ctrl.State()
	if s.Phase != workflow.PhaseFailed {
		t.Fatalf("expected failed, got %v", s.Phase)
	}
	view := m.View()
	if !strings.Contains(view, "failed to analyze pitch deck") {
		t.Errorf("expected error message in view")
	}
	if !strings.Contains(view, "Analyze Pitch Deck") {
		t.Errorf("expected idle caption after failure")
	}
	if !s.CanSubmit() {
		t.Errorf("expected retry to be possible")
	}
}

func TestSelectPathClearsReport(t *testing.T) {
	svc := &fakeService{result: sampleResult()}
	m := newTestModel(t, svc)
	m.selectPath(writeDeck(t, "first.pdf"))
	finish(t, m, press(m, "enter"))

	m.selectPath(writeDeck(t, "second.pdf"))

	s := m.ctrl.State()
	if s.Phase != workflow.PhaseIdle || s.Result != nil {
		t.Fatalf("expected idle state without result, got %v", s.Phase)
	}
	view := m.View()
	if strings.Contains(view, "Questions to Ask the Founder") {
		t.Errorf("expected report to be gone")
	}
	if !strings.Contains(view, "second.pdf") {
		t.Errorf("expected new file in view")
	}
}

func TestSelectPathRejectsNonPDF(t *testing.T) {
	m := newTestModel(t, &fakeService{})
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	m.selectPath(path)

	if m.ctrl.State().File != nil {
		t.Errorf("expected no file selected")
	}
	if m.hint == "" || !m.hintError {
		t.Errorf("expected error hint, got %q", m.hint)
	}
}

func TestPickerOpenAndCancel(t *testing.T) {
	m := newTestModel(t, &fakeService{})

	press(m, "o")
	if m.picker == nil {
		t.Fatal("expected picker to open")
	}

	press(m, "esc")
	if m.picker != nil {
		t.Errorf("expected picker to close on esc")
	}
}

func TestCycleThemeSavesConfig(t *testing.T) {
	m := newTestModel(t, &fakeService{})
	before := m.cfg.Theme

	press(m, "t")

	if m.cfg.Theme == before {
		t.Errorf("expected theme to change from %q", before)
	}
	if m.styles.theme.Name != m.cfg.Theme {
		t.Errorf("styles theme %q does not match config %q", m.styles.theme.Name, m.cfg.Theme)
	}
	if _, err := os.Stat(m.cfg.Path()); err != nil {
		t.Errorf("expected config file to be written: %v", err)
	}
}

func TestCopyWithoutQuestions(t *testing.T) {
	svc := &fakeService{result: &pitchdeck.AnalysisResult{FileID: "f1"}}
	m := newTestModel(t, svc)
	m.selectPath(writeDeck(t, "acme.pdf"))
	finish(t, m, press(m, "enter"))

	if cmd := press(m, "c"); cmd != nil {
		t.Errorf("expected no clipboard command without questions")
	}
	if !strings.Contains(m.hint, "No questions") {
		t.Errorf("expected hint, got %q", m.hint)
	}
}

func TestClipboardMsg(t *testing.T) {
	m := newTestModel(t, &fakeService{})

	m.Update(clipboardMsg{count: 3})
	if m.hintError || !strings.Contains(m.hint, "Copied 3 questions") {
		t.Errorf("unexpected hint %q", m.hint)
	}

	m.Update(clipboardMsg{err: errors.New("no clipboard")})
	if !m.hintError {
		t.Errorf("expected error hint")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, &fakeService{})
	press(m, "?")
	if !m.showHelp {
		t.Errorf("expected help to show")
	}
	if !strings.Contains(m.View(), "Workflow") {
		t.Errorf("expected full help in view")
	}
	press(m, "?")
	if m.showHelp {
		t.Errorf("expected help to hide")
	}
}
