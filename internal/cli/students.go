package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/classboard/internal/roster"
	"github.com/idilsaglam/classboard/internal/ui"
)

func newStudentsCmd(flags *rootFlags) *cobra.Command {
	var filter bool
	cmd := &cobra.Command{
		Use:   "students",
		Short: "Show the student roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			p := s.roster()
			p.SetFilterEnabled(filter)
			fmt.Fprintln(cmd.OutOrStdout(), studentsView(s.styles, p))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&filter, "filter", "f", false, fmt.Sprintf("only students with attendance above %d%%", roster.AttendanceThreshold))
	return cmd
}

func studentsView(s ui.Styles, p *roster.Panel) string {
	lines := []string{
		s.Title.Render("Student Dashboard"),
		fmt.Sprintf("Total Students: %d", p.Total()),
	}
	if p.FilterEnabled() {
		lines = append(lines, s.Muted.Render(fmt.Sprintf("Attendance > %d%% only", roster.AttendanceThreshold)))
	}
	lines = append(lines, ui.StudentCards(s, p.Visible(), 4))
	return ui.Panel(s, lines)
}
