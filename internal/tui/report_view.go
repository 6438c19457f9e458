package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akarpel/filetriage/internal/report"
	"github.com/akarpel/filetriage/pkg/filetriage"
)

// RenderRecords renders the sorted batch, one line per record.
func RenderRecords(records []filetriage.Record) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Triage order"))
	b.WriteByte('\n')
	for _, rec := range records {
		line := fmt.Sprintf("%s %s %s → %s",
			PriorityStyle(rec.Priority).Render(fmt.Sprintf("P%d", rec.Priority)),
			SymbolBullet,
			rec.Filename,
			SubtitleStyle.Render(string(rec.Category)),
		)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderSummary renders the statistics box: total, category
// distribution, and priority distribution, with one-decimal
// percentages. Empty batches render a box with zero totals and no
// distribution rows.
func RenderSummary(s filetriage.Summary) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Statistical Analysis"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Total files processed: %s\n",
		CountStyle.Render(fmt.Sprintf("%d", s.Total))))

	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render("Category distribution"))
	b.WriteByte('\n')
	for _, c := range filetriage.Categories() {
		n, ok := s.ByCategory[c]
		if !ok {
			continue
		}
		b.WriteString(distributionRow(string(c), n, s.Total))
	}

	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render("Priority distribution"))
	b.WriteByte('\n')
	for _, p := range presentPriorities(s) {
		label := PriorityStyle(p).Render(fmt.Sprintf("Priority %d", p))
		b.WriteString(distributionRow(label, s.ByPriority[p], s.Total))
	}

	return BoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderReport renders the full run report: sorted records followed
// by the statistics box.
func RenderReport(rep *report.Report) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderRecords(rep.Records),
		RenderSummary(rep.Summary),
	) + "\n"
}

func distributionRow(label string, count, total int) string {
	pct := PercentStyle.Render(fmt.Sprintf("(%.1f%%)", report.Percent(count, total)))
	return fmt.Sprintf("  %-28s %s files %s\n", label, CountStyle.Render(fmt.Sprintf("%3d", count)), pct)
}

func presentPriorities(s filetriage.Summary) []int {
	prios := make([]int, 0, len(s.ByPriority))
	for p := range s.ByPriority {
		prios = append(prios, p)
	}
	sort.Ints(prios)
	return prios
}
