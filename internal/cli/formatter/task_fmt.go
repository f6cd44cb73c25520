package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/alexanderramin/sitewise/internal/phase"
	"github.com/alexanderramin/sitewise/internal/schedule"
)

// RenderTaskTable renders the schedule as a task table.
func RenderTaskTable(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No tasks in the schedule") + "\n"
	}

	headers := []string{"ID", "TASK", "CATEGORY", "DATES", "PROGRESS", "CO"}
	var rows [][]string
	for _, t := range tasks {
		co := ""
		if t.IsChangeOrder {
			co = StyleYellow.Render("#" + t.ChangeOrderNumber)
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			t.Name,
			CategoryBadge(t.Category),
			DateRange(t.Start, t.End),
			ProgressPill(t.Progress),
			co,
		})
	}
	return RenderTable(headers, rows)
}

// RenderTaskDetail renders one task with its dependency list.
func RenderTaskDetail(t *domain.Task) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", Bold(t.Name), Dim(string(t.Category))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("ID      "), t.ID))
	b.WriteString(fmt.Sprintf("  %s  %s (%s)\n", Dim("DATES   "), DateRange(t.Start, t.End), Days(schedule.Duration(t.Start, t.End))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("PROGRESS"), ProgressPill(t.Progress)))
	if p, ok := phase.Identify(t.Name); ok {
		label := string(p)
		if phase.RequiresInspection(p) {
			label += StyleYellow.Render("  (inspection required)")
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("PHASE   "), label))
		if typical := phase.TypicalDuration(p); typical > 0 && schedule.Duration(t.Start, t.End) > 2*typical {
			b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("        "),
				Dim(fmt.Sprintf("scheduled well beyond the typical %s for this phase", Days(typical)))))
		}
	}
	if t.PayeeName != "" {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("PAYEE   "), t.PayeeName))
	}
	if t.IsChangeOrder {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("SOURCE  "), StyleYellow.Render("change order #"+t.ChangeOrderNumber)))
	} else {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("SOURCE  "), "estimate"))
	}

	if len(t.Dependencies) > 0 {
		b.WriteString("\n  " + Dim("DEPENDS ON") + "\n")
		for _, ref := range t.Dependencies {
			name := ref.Name
			if name == "" {
				name = ref.ID
			}
			b.WriteString(fmt.Sprintf("    • %s %s\n", name, TruncID(ref.ID)))
		}
	}
	return b.String()
}
