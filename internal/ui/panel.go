package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/classboard/internal/model"
	"github.com/idilsaglam/classboard/internal/roster"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws lines inside a rounded box in the theme's border color.
func Panel(s Styles, lines []string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// StudentCard renders one student; A-grade students get the highlight style.
func StudentCard(s Styles, st model.Student) string {
	style := s.Card
	if roster.IsTopper(st.Grade) {
		style = s.Highlight
	}
	body := fmt.Sprintf("%s\nGrade: %s\nAttendance: %d%%", lipgloss.NewStyle().Bold(true).Render(st.Name), st.Grade, st.Attendance)
	return style.Render(body)
}

// StudentCards lays the cards out in rows of perRow.
func StudentCards(s Styles, students []model.Student, perRow int) string {
	if len(students) == 0 {
		return s.Muted.Render("no students")
	}
	if perRow < 1 {
		perRow = 1
	}
	var rows []string
	for i := 0; i < len(students); i += perRow {
		end := min(i+perRow, len(students))
		cards := make([]string, 0, end-i)
		for _, st := range students[i:end] {
			cards = append(cards, StudentCard(s, st))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// TodoLine renders "☐ text" or a struck-through "☑ text".
func TodoLine(s Styles, t model.Todo) string {
	if t.Done {
		return s.Success.Render(s.BoxChecked) + " " + s.Done.Render(t.Text)
	}
	return s.Muted.Render(s.BoxUnchecked) + " " + t.Text
}

// TodoHeader summarizes counts, e.g. "Todos  ✔ 1  • 2  Total 3".
func TodoHeader(s Styles, done, pending int) string {
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		s.Title.Render("Todos"),
		s.Success.Render(s.SymDone), done,
		s.Pending.Render(s.SymPending), pending,
		s.Accent.Render("Total"), done+pending,
	)
}
