package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mcao2/deckcheck/internal/pitchdeck"
)

const minReportWidth = 40

// RenderReport renders an analysis result as a scrollable document. The
// summary counters are printed as received; they are not checked against
// the lists below them.
func RenderReport(result *pitchdeck.AnalysisResult, upload *pitchdeck.UploadResult, styles Styles, width int) string {
	if result == nil {
		return ""
	}
	if width < minReportWidth {
		width = minReportWidth
	}

	var sections []string

	if meta := reportMeta(result, upload); meta != "" {
		sections = append(sections, styles.Subtitle.Render(meta))
	}

	sections = append(sections,
		renderSummary(result.Summary, styles, width),
		styles.Section.Render("Claims Extracted"),
	)
	if len(result.Claims) == 0 {
		sections = append(sections, styles.Help.Render("No claims were extracted"))
	} else {
		sections = append(sections, NewClaimsView(result.Claims, width, styles.theme).View())
	}

	sections = append(sections, "", styles.Section.Render("Verification Results"))
	if len(result.VerificationResults) == 0 {
		sections = append(sections, styles.Help.Render("No claims were verified"))
	}
	narrative := styles.Normal.Width(width - 2).PaddingLeft(2)
	for _, vr := range result.VerificationResults {
		sections = append(sections,
			styles.ClaimText.Width(width).Render(vr.Claim),
			narrative.Render(strings.TrimRight(vr.Result, "\n")),
			"",
		)
	}

	sections = append(sections, styles.Section.Render("Questions to Ask the Founder"))
	if len(result.Questions) == 0 {
		sections = append(sections, styles.Help.Render("No questions were generated"))
	}
	sections = append(sections, questionLines(result.Questions, styles, width)...)

	return strings.Join(sections, "\n")
}

func reportMeta(result *pitchdeck.AnalysisResult, upload *pitchdeck.UploadResult) string {
	var meta []string
	if upload != nil {
		if upload.Filename != "" {
			meta = append(meta, upload.Filename)
		}
		if upload.WordCount > 0 {
			meta = append(meta, formatCount(upload.WordCount)+" words")
		}
	}
	if result.Method != "" {
		meta = append(meta, "method: "+result.Method)
	}
	return strings.Join(meta, " · ")
}

func renderSummary(s pitchdeck.Summary, styles Styles, width int) string {
	cards := []string{
		statCard("Claims Extracted", s.TotalClaims, styles),
		statCard("Verified Claims", s.VerifiedClaims, styles),
		statCard("Questions Generated", s.QuestionsGenerated, styles),
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if lipgloss.Width(row) > width {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return row
}

func statCard(label string, value int, styles Styles) string {
	return styles.StatCard.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.StatLabel.Render(label),
		styles.StatValue.Render(strconv.Itoa(value)),
	))
}

// questionLines numbers questions from 1, keeping their order. Wrapped
// lines hang under the question text.
func questionLines(questions []string, styles Styles, width int) []string {
	lines := make([]string, 0, len(questions))
	for i, q := range questions {
		num := styles.Highlight.Render(fmt.Sprintf("%d.", i+1)) + " "
		textWidth := width - lipgloss.Width(num)
		if textWidth < 10 {
			textWidth = 10
		}
		text := styles.Normal.Width(textWidth).Render(q)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, num, text))
	}
	return lines
}

// QuestionsText formats questions as a plain numbered list for the clipboard
func QuestionsText(questions []string) string {
	var b strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return b.String()
}

func formatCount(n int) string {
	s := strconv.Itoa(n)
	if n < 1000 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

func formatSize(bytes int64) string {
	switch {
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.0f KB", float64(bytes)/(1<<10))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
