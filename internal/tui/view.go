package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/classboard/internal/ui"
)

const cardWidth = 26

// View implements tea.Model.
func (a *App) View() string {
	s := ui.StylesFor(a.theme.Mode())
	a.list.Styles.HelpStyle = s.Help

	var sections []string
	sections = append(sections, a.studentSection(s), "", a.todoSection(s))
	if a.status != "" {
		sections = append(sections, "", s.Error.Render(a.status))
	}
	return ui.Panel(s, sections)
}

func (a *App) studentSection(s ui.Styles) string {
	perRow := 4
	if a.width > 0 {
		perRow = max((a.width-4)/cardWidth, 1)
	}
	lines := []string{
		s.Title.Render("Student Dashboard") + "  " + s.Muted.Render("theme: "+a.theme.Mode().String()),
		fmt.Sprintf("Total Students: %d", a.roster.Total()),
		s.Accent.Render("[f] " + a.roster.FilterLabel()),
		ui.StudentCards(s, a.roster.Visible(), perRow),
	}
	return strings.Join(lines, "\n")
}

func (a *App) todoSection(s ui.Styles) string {
	done, pending := a.todos.Stats()
	lines := []string{
		s.Title.Render("Todo List") + "  " + s.Muted.Render("[t] Toggle Dark Mode"),
		ui.TodoHeader(s, done, pending),
		s.Muted.Render(ui.ProgressBar(done, done+pending, 28)),
		"",
	}
	if a.adding {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(s.BorderColor).Padding(0, 1)
		lines = append(lines, bar.Render("Add Task\n"+a.input.View()))
	}
	lines = append(lines, a.list.View())
	if a.todos.AllDone() {
		lines = append(lines, s.Success.Render("All tasks completed!"))
	}
	return strings.Join(lines, "\n")
}
