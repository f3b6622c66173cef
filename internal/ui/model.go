package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mcao2/deckcheck/internal/config"
	"github.com/mcao2/deckcheck/internal/pitchdeck"
	"github.com/mcao2/deckcheck/internal/workflow"
)

// Model renders the workflow controller and turns key presses into its
// intents. It never changes workflow state directly.
type Model struct {
	ctrl   *workflow.Controller
	cfg    *config.Config
	width  int
	height int
	styles Styles
	keys   KeyMap

	themeIndex int
	showHelp   bool

	spinner spinner.Model
	report  viewport.Model
	shown   *pitchdeck.AnalysisResult // result currently loaded into report

	picker   *FilePicker
	startDir string

	// hint is view-local feedback (rejected submit, clipboard) that does
	// not belong in the workflow state
	hint      string
	hintError bool
}

// JobDoneMsg carries the completion of a workflow job back to Update
type JobDoneMsg struct {
	Event workflow.Event
}

type clipboardMsg struct {
	count int
	err   error
}

// NewModel creates the UI around an existing controller
func NewModel(cfg *config.Config, ctrl *workflow.Controller) *Model {
	if cfg == nil {
		cfg = &config.Config{Theme: "default"}
	}

	themeNames := GetThemeNames()
	themeIndex := 0
	for i, name := range themeNames {
		if name == cfg.Theme {
			themeIndex = i
			break
		}
	}
	theme := Themes[themeNames[themeIndex]]

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	startDir := "."
	if f := ctrl.State().File; f != nil {
		startDir = filepath.Dir(f.Path)
	} else if wd, err := os.Getwd(); err == nil {
		startDir = wd
	}

	return &Model{
		ctrl:       ctrl,
		cfg:        cfg,
		styles:     NewStyles(theme),
		keys:       DefaultKeyMap(),
		themeIndex: themeIndex,
		spinner:    s,
		report:     viewport.New(80, 20),
		startDir:   startDir,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeReport()
		m.syncReport(true)
		if m.picker != nil {
			return m, m.picker.Update(msg)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case JobDoneMsg:
		next := m.ctrl.Handle(msg.Event)
		m.syncReport(false)
		if next != nil {
			return m, runJob(next)
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.setHint(fmt.Sprintf("Copy failed: %v", msg.err), true)
		} else {
			m.setHint(fmt.Sprintf("Copied %d questions to the clipboard", msg.count), false)
		}
		return m, nil
	}

	if m.picker != nil {
		return m.updatePicker(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		if m.ctrl.State().Phase == workflow.PhaseDone {
			var cmd tea.Cmd
			m.report, cmd = m.report.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) View() string {
	var content string
	centered := true

	switch {
	case m.picker != nil:
		content = m.pickerView()
	case m.ctrl.State().Phase == workflow.PhaseDone:
		content = m.reportView()
		centered = false
	default:
		content = m.mainView()
	}

	if centered && m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}

	return content
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.showHelp = false
		m.hint = ""
		return m, nil
	case key.Matches(msg, m.keys.Open):
		return m, m.openPicker()
	case key.Matches(msg, m.keys.ToggleMode):
		m.ctrl.ToggleMode()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	}

	if m.ctrl.State().Phase == workflow.PhaseDone {
		return m.handleReportKeys(msg)
	}
	return m, nil
}

func (m *Model) handleReportKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Copy) {
		return m, m.copyQuestions()
	}

	var cmd tea.Cmd
	m.report, cmd = m.report.Update(msg)
	return m, cmd
}

func (m *Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case k.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(k, m.keys.Back):
			m.picker = nil
			return m, nil
		}
	}

	cmd := m.picker.Update(msg)
	switch {
	case m.picker.Done():
		path := m.picker.Path()
		m.picker = nil
		m.selectPath(path)
		return m, nil
	case m.picker.Aborted():
		m.picker = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) openPicker() tea.Cmd {
	height := m.height - 12
	if height <= 0 {
		height = 10
	}
	m.picker = NewFilePicker(m.startDir, height, m.styles.theme.Name)
	m.hint = ""
	return m.picker.Init()
}

func (m *Model) selectPath(path string) {
	doc, err := pitchdeck.OpenDocument(path)
	if err != nil {
		m.setHint(err.Error(), true)
		return
	}
	m.ctrl.SelectFile(doc)
	m.startDir = filepath.Dir(doc.Path)
	m.hint = ""
	m.syncReport(false)
}

func (m *Model) submit() tea.Cmd {
	job, err := m.ctrl.Submit()
	switch {
	case errors.Is(err, workflow.ErrNoFile):
		m.setHint(err.Error(), true)
		return nil
	case err != nil:
		// already running; the button is disabled
		return nil
	}

	m.hint = ""
	m.syncReport(false)
	return runJob(job)
}

func runJob(job workflow.Job) tea.Cmd {
	return func() tea.Msg {
		return JobDoneMsg{Event: job(context.Background())}
	}
}

func (m *Model) copyQuestions() tea.Cmd {
	result := m.ctrl.State().Result
	if result == nil || len(result.Questions) == 0 {
		m.setHint("No questions to copy", true)
		return nil
	}

	text := QuestionsText(result.Questions)
	count := len(result.Questions)
	return func() tea.Msg {
		return clipboardMsg{count: count, err: clipboard.WriteAll(text)}
	}
}

func (m *Model) cycleTheme() {
	themeNames := GetThemeNames()
	m.themeIndex = (m.themeIndex + 1) % len(themeNames)
	newTheme := themeNames[m.themeIndex]
	m.styles = NewStyles(Themes[newTheme])
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(Themes[newTheme].Accent))
	m.syncReport(true)

	if m.cfg != nil {
		m.cfg.Theme = newTheme
		_ = m.cfg.Save()
	}
}

func (m *Model) setHint(msg string, isError bool) {
	m.hint = msg
	m.hintError = isError
}

// report screen layout: header bar + blank line above, footer below
const (
	reportHeaderLines = 2
	reportFooterLines = 4
)

func (m *Model) resizeReport() {
	w := m.width - 2
	if w < minReportWidth {
		w = minReportWidth
	}
	h := m.height - reportHeaderLines - reportFooterLines
	if h < 3 {
		h = 3
	}
	m.report.Width = w
	m.report.Height = h
}

// syncReport reloads the viewport when a new result arrives, or always when
// force is set (resize, theme change)
func (m *Model) syncReport(force bool) {
	s := m.ctrl.State()
	if s.Phase != workflow.PhaseDone || s.Result == nil {
		m.shown = nil
		return
	}
	if !force && m.shown == s.Result {
		return
	}

	m.report.SetContent(RenderReport(s.Result, s.Upload, m.styles, m.report.Width))
	if m.shown != s.Result {
		m.report.GotoTop()
	}
	m.shown = s.Result
}

// ButtonCaption returns the submit button label for a state. Mode only
// changes the wording.
func ButtonCaption(s workflow.State) string {
	switch s.Phase {
	case workflow.PhaseUploading:
		return "Uploading..."
	case workflow.PhaseAnalyzing:
		if s.Mode == pitchdeck.ModeMultiAgent {
			return "Analyzing with Multi-Agent AI..."
		}
		return "Analyzing with AI..."
	default:
		return "Analyze Pitch Deck"
	}
}

func (m *Model) renderButton(s workflow.State) string {
	caption := ButtonCaption(s)
	if s.Phase.InFlight() {
		caption = m.spinner.View() + " " + caption
	}
	if !s.CanSubmit() {
		return m.styles.ButtonDisabled.Render(caption)
	}
	return m.styles.Button.Render(caption)
}

func fileMeta(doc pitchdeck.Document) string {
	var meta []string
	if doc.Pages > 0 {
		meta = append(meta, fmt.Sprintf("%d pages", doc.Pages))
	}
	meta = append(meta, formatSize(doc.Size))
	return strings.Join(meta, " · ")
}

func (m *Model) modeLines(s workflow.State) []string {
	check := "[ ]"
	if s.Mode == pitchdeck.ModeMultiAgent {
		check = "[x]"
	}
	return []string{
		"🚀  " + m.styles.Normal.Render(check+" Use Advanced Multi-Agent Analysis"),
		"     " + m.styles.Help.Render("4 specialized agents + web search tools for comprehensive verification."),
	}
}

func (m *Model) hintLine() string {
	if m.hint == "" {
		return ""
	}
	if m.hintError {
		return m.styles.Error.Render("⚠  " + m.hint)
	}
	return m.styles.Success.Render("✓  " + m.hint)
}

func (m *Model) mainView() string {
	s := m.ctrl.State()

	fileLine := "📄  " + m.styles.Help.Render("No file selected · press o to choose a PDF")
	if s.File != nil {
		fileLine = "📄  " + m.styles.Normal.Render("Selected: ") +
			m.styles.Highlight.Render(s.File.Name) +
			m.styles.Help.Render("  "+fileMeta(*s.File))
	}

	parts := []string{
		m.styles.Title.Render("Pitch Deck Analyzer"),
		m.styles.Subtitle.Render("AI-powered verification and due diligence for investor pitches"),
		"",
		fileLine,
	}
	parts = append(parts, m.modeLines(s)...)
	parts = append(parts, "", m.renderButton(s))

	if s.Phase == workflow.PhaseFailed && s.Err != "" {
		parts = append(parts, "", m.styles.ErrorBox.Render("⚠  "+s.Err))
	}
	if hint := m.hintLine(); hint != "" {
		parts = append(parts, "", hint)
	}

	card := m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	help := m.renderHelpLine(m.keys.ShortHelp())
	if m.showHelp {
		help = m.renderFullHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Center, "", card, "", help)
}

func (m *Model) reportView() string {
	s := m.ctrl.State()

	headerLeft := m.styles.HelpKey.Render("Pitch Deck Analyzer")
	var right []string
	if s.File != nil {
		right = append(right, s.File.Name)
	}
	right = append(right, s.Mode.String())
	headerRight := m.styles.HelpDesc.Render(strings.Join(right, " · "))

	headerGap := "  "
	if m.width > 0 {
		gap := m.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight) - 3
		if gap > 0 {
			headerGap = strings.Repeat(" ", gap)
		}
	}
	headerBar := m.styles.HeaderBar
	if m.width > 0 {
		headerBar = headerBar.Width(m.width - 1)
	}
	header := headerBar.Render(headerLeft + headerGap + headerRight)

	status := m.hintLine()
	if status == "" {
		status = m.styles.Help.Render(fmt.Sprintf("%3.0f%%", m.report.ScrollPercent()*100))
	}

	footerLines := []string{status, m.renderHelpLine(m.keys.ReportHelp())}
	if m.showHelp {
		footerLines = []string{status, m.renderFullHelp()}
	}
	footerBar := m.styles.FooterBar
	if m.width > 0 {
		footerBar = footerBar.Width(m.width - 1)
	}
	footer := footerBar.Render(strings.Join(footerLines, "\n"))

	return strings.Join([]string{header, "", m.report.View(), footer}, "\n")
}

func (m *Model) pickerView() string {
	help := m.renderHelpLine([]key.Binding{m.keys.Back})
	return lipgloss.JoinVertical(lipgloss.Center,
		"",
		m.styles.Card.Render(m.picker.View()),
		"",
		help,
	)
}

// Help rendering

func (m *Model) renderHelpLine(bindings []key.Binding) string {
	var parts []string
	sep := m.styles.HelpSep.Render(" · ")
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.styles.HelpKey.Render(h.Key)+" "+m.styles.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, sep)
}

func (m *Model) renderFullHelp() string {
	titles := []string{"Workflow", "Report", "General"}

	var columns []string
	for i, group := range m.keys.FullHelp() {
		lines := []string{m.styles.HelpKey.Render(titles[i])}
		for _, b := range group {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("%s  %s",
				m.styles.HelpKey.Render(fmt.Sprintf("%-6s", h.Key)),
				m.styles.HelpDesc.Render(h.Desc),
			))
		}
		columns = append(columns, lipgloss.NewStyle().PaddingRight(4).Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
