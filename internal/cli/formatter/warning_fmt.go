package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sitewise/internal/domain"
)

// RenderWarnings renders the advisory list grouped under a count header.
func RenderWarnings(warnings []domain.ScheduleWarning) string {
	if len(warnings) == 0 {
		return StyleGreen.Render("✔ No schedule warnings") + "\n"
	}

	var errors, advisories int
	for _, w := range warnings {
		if w.Severity == domain.SeverityError {
			errors++
		} else {
			advisories++
		}
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Schedule warnings (%d)", len(warnings))))
	b.WriteString("\n\n")

	for _, w := range warnings {
		b.WriteString(fmt.Sprintf("%s  %s\n", SeverityPill(w.Severity), w.Message))
		if w.Suggestion != "" {
			b.WriteString(fmt.Sprintf("           %s\n", Dim("↳ "+w.Suggestion)))
		}
	}

	b.WriteString("\n")
	summary := fmt.Sprintf("%d blocking, %d advisory", errors, advisories)
	if errors > 0 {
		b.WriteString(StyleRed.Render(summary))
	} else {
		b.WriteString(Dim(summary))
	}
	b.WriteString("\n")
	return b.String()
}
