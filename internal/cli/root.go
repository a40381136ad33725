package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/classboard/internal/theme"
	"github.com/idilsaglam/classboard/internal/tui"
	"github.com/idilsaglam/classboard/internal/ui"
)

// Options tune where output goes; zero values mean stdout/stderr.
type Options struct {
	Out io.Writer
	Err io.Writer
}

type rootFlags struct {
	configPath string
	theme      string
	logLevel   string
	noColor    bool
}

// usageError marks bad invocations, which exit with 2.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	if opt.Err == nil {
		opt.Err = os.Stderr
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(opt.Out)
	cmd.SetErr(opt.Err)

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}
	ui.Fail(opt.Err, ui.StylesFor(theme.Light), err.Error())

	var uerr *usageError
	if errors.As(err, &uerr) || strings.HasPrefix(err.Error(), "unknown command") {
		fmt.Fprintln(opt.Err, "Run 'classboard --help' for usage.")
		return 2
	}
	return 1
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "classboard",
		Short:         "Student roster and persisted todo list in one dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor || !isTerminal(cmd.OutOrStdout()) {
				ui.DisableColor()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, flags)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "config file (default ~/.classboard/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "start in light or dark mode")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newStudentsCmd(flags))
	cmd.AddCommand(newTodoCmd(flags))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// runDashboard starts the TUI, or prints a static overview when stdout is not a terminal.
func runDashboard(cmd *cobra.Command, flags *rootFlags) error {
	out := cmd.OutOrStdout()
	interactive := isTerminal(out)

	logOut := cmd.ErrOrStderr()
	if interactive {
		// the alternate screen owns the terminal; logs go to log.file or nowhere
		logOut = io.Discard
	}
	s, err := openSession(flags, logOut)
	if err != nil {
		return err
	}
	defer s.Close()

	todos, err := s.todos()
	if err != nil {
		return err
	}
	rost := s.roster()

	if !interactive {
		fmt.Fprintln(out, studentsView(s.styles, rost))
		fmt.Fprintln(out, todoListView(s.styles, todos, false))
		return nil
	}

	app := tui.New(s.theme, rost, todos, s.log)
	if err := tui.Run(cmd.Context(), app, s.watch); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
