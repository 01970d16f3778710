// Package xexec contains extended os/exec utilities.
package xexec

import (
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/xerrors"
)

// Shell builds a command that runs line under `shell -c`.
func Shell(shell, line string) *exec.Cmd {
	return exec.Command(shell, "-c", line)
}

// ShellWith builds a command that runs line with extra arguments appended
// token-for-token via the shell's positional parameters. Arguments are
// never spliced into the line itself, so they survive whitespace and
// quoting intact.
func ShellWith(shell, line string, extra ...string) *exec.Cmd {
	if len(extra) == 0 {
		return Shell(shell, line)
	}
	argv := append([]string{"-c", line + ` "$@"`, shell}, extra...)
	return exec.Command(shell, argv...)
}

// Attach wires the process's standard streams into cmd.
func Attach(cmd *exec.Cmd) {
	cmd.Stderr = os.Stderr
	cmd.Stdout = os.Stdout
	cmd.Stdin = os.Stdin
}

// ExitCode maps the error from (*exec.Cmd).Run to a shell-style exit code.
// A command killed by a signal reports 128+signum, matching common shells.
// ok is false when err doesn't describe a terminated command at all, e.g.
// the shell itself couldn't be started.
func ExitCode(err error) (code int, ok bool) {
	if err == nil {
		return 0, true
	}
	var exitErr *exec.ExitError
	if !xerrors.As(err, &exitErr) {
		return 0, false
	}
	if ws, sysOK := exitErr.Sys().(syscall.WaitStatus); sysOK && ws.Signaled() {
		return 128 + int(ws.Signal()), true
	}
	return exitErr.ExitCode(), true
}
