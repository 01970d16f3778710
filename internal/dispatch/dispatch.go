// Package dispatch runs recipes as sequential shell invocations.
//
// Each command line of a recipe runs under `<shell> -c`, one after the
// other; a non-zero exit aborts the remaining lines and its status is
// returned unchanged (fail-fast). Extra invocation arguments are appended
// token-for-token to the final command line through the shell's positional
// parameters, never by string interpolation.
package dispatch

import (
	"io"
	"os/exec"
	"strings"

	"golang.org/x/xerrors"

	"github.com/jibtool/jib/internal/recipe"
	"github.com/jibtool/jib/internal/xexec"
)

// DefaultShell interprets command lines when Dispatcher.Shell is unset.
const DefaultShell = "bash"

// Dispatcher executes recipes from a Set. The zero value runs bash in the
// current working directory with the process's standard streams. Runs are
// synchronous; a Dispatcher holds no state between calls.
type Dispatcher struct {
	// Shell is invoked as `Shell -c <line>` for every command line.
	Shell string
	// Dir is the working directory for spawned commands. Empty means the
	// caller's working directory.
	Dir string

	// Std streams for spawned commands. When all three are nil the
	// process's own streams are inherited.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the named recipe's command lines in declared order,
// forwarding extraArgs to the last line. It returns the exit status of the
// last command run: zero when every line succeeded, or the failing line's
// status with the rest of the recipe skipped.
//
// The returned error is *recipe.UnknownRecipeError when name isn't in the
// set (nothing is spawned), or a wrapped spawn failure when the shell
// itself couldn't start.
func (d *Dispatcher) Run(set *recipe.Set, name string, extraArgs []string) (int, error) {
	r, err := set.Lookup(name)
	if err != nil {
		return 0, err
	}

	shell := d.Shell
	if shell == "" {
		shell = DefaultShell
	}

	for i, line := range r.Commands {
		var cmd *exec.Cmd
		if i == len(r.Commands)-1 {
			cmd = xexec.ShellWith(shell, line, extraArgs...)
		} else {
			cmd = xexec.Shell(shell, line)
		}
		cmd.Dir = d.Dir
		d.attach(cmd)

		runErr := cmd.Run()
		code, ok := xexec.ExitCode(runErr)
		if !ok {
			return 0, xerrors.Errorf("recipe %v: spawn %v -c %q: %w", name, shell, line, runErr)
		}
		if code != 0 {
			return code, nil
		}
	}
	return 0, nil
}

// Commands returns the command lines Run would execute for r, with
// extraArgs rendered onto the final line. The rendering is display-only;
// execution passes extraArgs as discrete tokens.
func Commands(r *recipe.Recipe, extraArgs []string) []string {
	lines := make([]string, len(r.Commands))
	copy(lines, r.Commands)
	if len(extraArgs) > 0 && len(lines) > 0 {
		lines[len(lines)-1] += " " + strings.Join(extraArgs, " ")
	}
	return lines
}

func (d *Dispatcher) attach(cmd *exec.Cmd) {
	if d.Stdin == nil && d.Stdout == nil && d.Stderr == nil {
		xexec.Attach(cmd)
		return
	}
	cmd.Stdin = d.Stdin
	cmd.Stdout = d.Stdout
	cmd.Stderr = d.Stderr
}
