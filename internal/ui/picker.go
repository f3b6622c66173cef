package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mcao2/deckcheck/internal/pitchdeck"
)

// FilePicker wraps a Huh form with a single PDF file picker field
type FilePicker struct {
	form *huh.Form
	path string
}

// NewFilePicker creates a picker rooted at dir
func NewFilePicker(dir string, height int, themeName string) *FilePicker {
	fp := &FilePicker{}

	if height < 5 {
		height = 5
	}

	fp.form = huh.NewForm(
		huh.NewGroup(
			huh.NewFilePicker().
				Title("Choose a pitch deck").
				Description("Only .pdf files can be analyzed").
				CurrentDirectory(dir).
				AllowedTypes([]string{".pdf", ".PDF"}).
				ShowHidden(false).
				Picking(true).
				Height(height).
				Validate(func(path string) error {
					_, err := pitchdeck.OpenDocument(path)
					return err
				}).
				Value(&fp.path),
		),
	).WithTheme(huhTheme(themeName)).WithShowHelp(true)

	return fp
}

func huhTheme(name string) *huh.Theme {
	switch name {
	case "catppuccin":
		return huh.ThemeCatppuccin()
	case "dracula":
		return huh.ThemeDracula()
	case "nord", "gruvbox":
		return huh.ThemeBase16()
	default:
		return huh.ThemeCharm()
	}
}

// Init starts the form and triggers the first directory read
func (fp *FilePicker) Init() tea.Cmd {
	return fp.form.Init()
}

// Update forwards a message to the underlying form
func (fp *FilePicker) Update(msg tea.Msg) tea.Cmd {
	model, cmd := fp.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		fp.form = f
	}
	return cmd
}

func (fp *FilePicker) View() string {
	return fp.form.View()
}

// Done reports whether a file was picked
func (fp *FilePicker) Done() bool {
	return fp.form.State == huh.StateCompleted
}

// Aborted reports whether the user left the form without picking
func (fp *FilePicker) Aborted() bool {
	return fp.form.State == huh.StateAborted
}

// Path returns the picked path, empty until Done
func (fp *FilePicker) Path() string {
	return fp.path
}
