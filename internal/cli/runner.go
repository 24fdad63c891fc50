package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noanitzan/my-keeps/internal/keeps"
	"github.com/noanitzan/my-keeps/internal/ui"
)

// Options wires the runner to its surroundings. Zero values mean the
// process's stdio and the system clipboard.
type Options struct {
	In        io.Reader
	Out       io.Writer
	Err       io.Writer
	Clipboard keeps.Clipboard
}

func (o Options) withDefaults() Options {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Clipboard == nil {
		o.Clipboard = keeps.SystemClipboard()
	}
	return o
}

// usageError marks bad invocations (exit code 2).
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt = opt.withDefaults()
	a := &app{opt: opt}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(opt.In)
	root.SetOut(opt.Out)
	root.SetErr(opt.Err)

	err := root.Execute()
	a.close()
	if err == nil {
		return 0
	}
	ui.Fail(opt.Err, err.Error())
	var ue usageError
	switch {
	case errors.As(err, &ue), errors.Is(err, keeps.ErrRejected):
		return 2
	case strings.HasPrefix(err.Error(), "unknown command"),
		strings.HasPrefix(err.Error(), "unknown flag"),
		strings.HasPrefix(err.Error(), "unknown shorthand flag"):
		fmt.Fprintln(opt.Err, ui.Dim("Run `keeps --help` for usage."))
		return 2
	}
	return 1
}

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: %s", usage)
		}
		return nil
	}
}

func minArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usagef("usage: %s", usage)
		}
		return nil
	}
}
