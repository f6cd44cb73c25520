package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sitewise/internal/schedule"
)

// RenderCriticalPath renders the per-task pass results as a table, critical
// tasks highlighted, with any cycle-omitted tasks called out below.
func RenderCriticalPath(result *schedule.PathResult) string {
	if len(result.Entries) == 0 && len(result.Omitted) == 0 {
		return Dim("No tasks scheduled") + "\n"
	}

	headers := []string{"", "TASK", "ES", "EF", "LS", "LF", "SLACK"}
	var rows [][]string
	for _, e := range result.Entries {
		marker := " "
		name := e.TaskName
		if e.Critical {
			marker = StyleRed.Render("●")
			name = StyleBold.Render(name)
		}
		rows = append(rows, []string{
			marker,
			name,
			fmt.Sprintf("%.0f", e.EarliestStart),
			fmt.Sprintf("%.0f", e.EarliestFinish),
			fmt.Sprintf("%.0f", e.LatestStart),
			fmt.Sprintf("%.0f", e.LatestFinish),
			fmt.Sprintf("%.0f", e.Slack),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Earliest project finish:"), Bold(Days(int(result.ProjectEnd)))))

	if len(result.Omitted) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render(fmt.Sprintf("▲ %d task(s) on a dependency cycle were excluded:", len(result.Omitted))))
		b.WriteString("\n")
		for _, id := range result.Omitted {
			b.WriteString("  " + Dim(id) + "\n")
		}
	}
	return b.String()
}
