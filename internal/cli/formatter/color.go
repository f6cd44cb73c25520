package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SeverityStyle returns the lipgloss style for a warning severity.
func SeverityStyle(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityError:
		return StyleRed
	case domain.SeverityWarning:
		return StyleYellow
	case domain.SeverityInfo:
		return StyleBlue
	default:
		return StyleDim
	}
}

// SeverityPill returns a colored severity indicator such as "● ERROR".
func SeverityPill(s domain.Severity) string {
	switch s {
	case domain.SeverityError:
		return StyleRed.Render("● ERROR")
	case domain.SeverityWarning:
		return StyleYellow.Render("▲ WARNING")
	case domain.SeverityInfo:
		return StyleBlue.Render("○ INFO")
	default:
		return StyleDim.Render("● " + strings.ToUpper(string(s)))
	}
}

// CategoryBadge returns a purple-styled cost category label.
func CategoryBadge(c domain.CostCategory) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(string(c)[:1]) + string(c)[1:]
	return StylePurple.Render(label)
}

// ProgressPill colors a progress percentage: dim when untouched, green when
// complete, yellow in between.
func ProgressPill(progress int) string {
	text := fmt.Sprintf("%d%%", progress)
	switch {
	case progress >= 100:
		return StyleGreen.Render(text)
	case progress > 0:
		return StyleYellow.Render(text)
	default:
		return StyleDim.Render(text)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
