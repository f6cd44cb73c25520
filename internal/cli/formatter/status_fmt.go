package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sitewise/internal/service"
)

// RenderStatus renders the schedule summary box.
func RenderStatus(status *service.ScheduleStatus) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %d task(s), %d from change orders\n",
		Dim("SCHEDULE"), status.TaskCount, status.ChangeOrderCount))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("SPAN    "), Days(status.ProjectDuration)))

	if len(status.Overdue) > 0 {
		b.WriteString("\n" + StyleRed.Render(fmt.Sprintf("▲ %d overdue", len(status.Overdue))) + "\n")
		for _, t := range status.Overdue {
			b.WriteString(fmt.Sprintf("  • %s %s\n", t.Name, Dim(DateRange(t.Start, t.End))))
		}
	}

	if len(status.Ready) > 0 {
		b.WriteString("\n" + StyleGreen.Render(fmt.Sprintf("● %d ready to start", len(status.Ready))) + "\n")
		for _, t := range status.Ready {
			b.WriteString(fmt.Sprintf("  • %s %s\n", t.Name, Dim(DateRange(t.Start, t.End))))
		}
	}

	return RenderBox("Schedule status", strings.TrimRight(b.String(), "\n"))
}
