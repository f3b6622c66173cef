package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named color palette
type Theme struct {
	Name       string
	Primary    string
	Secondary  string
	Accent     string
	Success    string
	Error      string
	Text       string
	Muted      string
	Subtle     string
	Background string
}

// Themes holds the built-in palettes keyed by name
var Themes = map[string]Theme{
	"default": {
		Name: "default", Primary: "#7D56F4", Secondary: "#5A56E0", Accent: "#B794F4",
		Success: "#04B575", Error: "#FF5F87", Text: "#FAFAFA", Muted: "#A0A0A0",
		Subtle: "#4A4A4A", Background: "#1A1A1A",
	},
	"catppuccin": {
		Name: "catppuccin", Primary: "#CBA6F7", Secondary: "#89B4FA", Accent: "#F5C2E7",
		Success: "#A6E3A1", Error: "#F38BA8", Text: "#CDD6F4", Muted: "#A6ADC8",
		Subtle: "#45475A", Background: "#1E1E2E",
	},
	"dracula": {
		Name: "dracula", Primary: "#BD93F9", Secondary: "#8BE9FD", Accent: "#FF79C6",
		Success: "#50FA7B", Error: "#FF5555", Text: "#F8F8F2", Muted: "#BFBFBF",
		Subtle: "#44475A", Background: "#282A36",
	},
	"nord": {
		Name: "nord", Primary: "#88C0D0", Secondary: "#81A1C1", Accent: "#B48EAD",
		Success: "#A3BE8C", Error: "#BF616A", Text: "#ECEFF4", Muted: "#D8DEE9",
		Subtle: "#4C566A", Background: "#2E3440",
	},
	"gruvbox": {
		Name: "gruvbox", Primary: "#FABD2F", Secondary: "#83A598", Accent: "#D3869B",
		Success: "#B8BB26", Error: "#FB4934", Text: "#EBDBB2", Muted: "#A89984",
		Subtle: "#504945", Background: "#282828",
	},
}

// GetThemeNames returns theme names with "default" first, the rest sorted
func GetThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		if name != "default" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{"default"}, names...)
}

// Styles holds all the UI styles
type Styles struct {
	theme Theme

	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Normal    lipgloss.Style
	Help      lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
	HelpSep   lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	ErrorBox  lipgloss.Style
	Success   lipgloss.Style

	Card           lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Section        lipgloss.Style
	StatCard       lipgloss.Style
	StatLabel      lipgloss.Style
	StatValue      lipgloss.Style
	ClaimText      lipgloss.Style
	HeaderBar      lipgloss.Style
	FooterBar      lipgloss.Style
}

// NewStyles builds the style set for a theme
func NewStyles(t Theme) Styles {
	return Styles{
		theme: t,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)),

		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		HelpSep: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Subtle)),

		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)),

		ErrorBox: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Error)).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Success)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Primary)).
			Padding(1, 3),

		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Primary)).
			Padding(0, 3),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Background(lipgloss.Color(t.Subtle)).
			Padding(0, 3),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color(t.Subtle)),

		StatCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Subtle)).
			Padding(0, 2),

		StatLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		StatValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)),

		ClaimText: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Text)),

		HeaderBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.Subtle)).
			Padding(0, 1),

		FooterBar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color(t.Subtle)).
			Padding(0, 1),
	}
}

// DefaultStyles returns the style set of the default theme
func DefaultStyles() Styles {
	return NewStyles(Themes["default"])
}
