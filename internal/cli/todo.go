package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/classboard/internal/model"
	"github.com/idilsaglam/classboard/internal/todo"
	"github.com/idilsaglam/classboard/internal/ui"
)

func newTodoCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the todo list",
		Example: `  classboard todo add "Buy milk"
  classboard todo ls
  classboard todo done 1718000000000
  classboard todo rm 1718000000000`,
	}
	cmd.AddCommand(newTodoLsCmd(flags), newTodoAddCmd(flags), newTodoDoneCmd(flags), newTodoRmCmd(flags))
	return cmd
}

// withTodos opens a session and the todo panel for the duration of fn.
func withTodos(cmd *cobra.Command, flags *rootFlags, fn func(s *session, p *todo.Panel) error) error {
	s, err := openSession(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := s.todos()
	if err != nil {
		return err
	}
	return fn(s, p)
}

func newTodoLsCmd(flags *rootFlags) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTodos(cmd, flags, func(s *session, p *todo.Panel) error {
				fmt.Fprintln(cmd.OutOrStdout(), todoListView(s.styles, p, group))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&group, "group", "g", false, "group output by pending/done")
	return cmd
}

func newTodoAddCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task (text can be multiple words)",
		Args:  minArgs(1, "usage: classboard todo add <text...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTodos(cmd, flags, func(s *session, p *todo.Panel) error {
				t, added, err := p.Add(strings.Join(args, " "))
				if err != nil {
					return fmt.Errorf("save: %w", err)
				}
				if !added {
					ui.Note(cmd.OutOrStdout(), s.styles, "nothing added: task text is empty")
					return nil
				}
				ui.OK(cmd.OutOrStdout(), s.styles, fmt.Sprintf("added #%d", t.ID))
				return nil
			})
		},
	}
}

func newTodoDoneCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle done for the task with id",
		Args:  exactArgs(1, "usage: classboard todo done <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withTodos(cmd, flags, func(s *session, p *todo.Panel) error {
				found, err := p.Toggle(id)
				if err != nil {
					return fmt.Errorf("save: %w", err)
				}
				if !found {
					ui.Note(cmd.OutOrStdout(), s.styles, fmt.Sprintf("no task with id %d (run `classboard todo ls`)", id))
					return nil
				}
				t, _ := p.Get(id)
				state := "pending"
				if t.Done {
					state = "done"
				}
				ui.OK(cmd.OutOrStdout(), s.styles, fmt.Sprintf("marked #%d %s", id, state))
				if p.AllDone() {
					ui.OK(cmd.OutOrStdout(), s.styles, "All tasks completed!")
				}
				return nil
			})
		},
	}
}

func newTodoRmCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Remove the task with id",
		Args:    exactArgs(1, "usage: classboard todo rm <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withTodos(cmd, flags, func(s *session, p *todo.Panel) error {
				found, err := p.Remove(id)
				if err != nil {
					return fmt.Errorf("save: %w", err)
				}
				if !found {
					ui.Note(cmd.OutOrStdout(), s.styles, fmt.Sprintf("no task with id %d (run `classboard todo ls`)", id))
					return nil
				}
				ui.OK(cmd.OutOrStdout(), s.styles, fmt.Sprintf("removed #%d", id))
				return nil
			})
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, usageErrorf("not a task id: %s", s)
	}
	return id, nil
}

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &usageError{msg: usage}
		}
		return nil
	}
}

func minArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return &usageError{msg: usage}
		}
		return nil
	}
}

// -------------- rendering helpers --------------

func todoListView(s ui.Styles, p *todo.Panel, group bool) string {
	done, pending := p.Stats()
	lines := []string{
		ui.TodoHeader(s, done, pending),
		s.Muted.Render(ui.ProgressBar(done, done+pending, 28)),
		"",
	}
	if group {
		lines = append(lines, groupLines(s, p.Items())...)
	} else {
		lines = append(lines, flatLines(s, p.Items())...)
	}
	if p.AllDone() {
		lines = append(lines, "", s.Success.Render("All tasks completed!"))
	}
	lines = append(lines, "", s.Muted.Render("Tip: add with `classboard todo add \"Buy milk\"`"))
	return ui.Panel(s, lines)
}

func flatLines(s ui.Styles, items []model.Todo) []string {
	if len(items) == 0 {
		return []string{s.Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if r := []rune(it.Text); len(r) > 80 {
			it.Text = string(r[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s", s.Muted.Render(fmt.Sprintf("%d", it.ID)), ui.TodoLine(s, it)))
	}
	return out
}

func groupLines(s ui.Styles, items []model.Todo) []string {
	var pend, done []model.Todo
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	section := func(title string, items []model.Todo) []string {
		lines := []string{s.Accent.Render(title)}
		if len(items) == 0 {
			return append(lines, s.Muted.Render("(none)"))
		}
		return append(lines, flatLines(s, items)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
