// Package shell emits the wrapper function that turns a printed path into an
// actual directory change. The program itself never changes its working
// directory; the wrapper captures stdout and cds when it holds a directory.
package shell

import (
	"fmt"
	"strings"
)

// WrapperName is the function installed into the user's shell.
const WrapperName = "dh"

// Shell defines the interface for shell-specific integration snippets.
type Shell interface {
	InitSnippet() string
	Name() string
}

// ZshShell implements Shell for Zsh.
type ZshShell struct{}

func (s *ZshShell) InitSnippet() string {
	return wrapperFunction(s.Name())
}

func (s *ZshShell) Name() string {
	return "zsh"
}

// BashShell implements Shell for Bash.
type BashShell struct{}

func (s *BashShell) InitSnippet() string {
	return wrapperFunction(s.Name())
}

func (s *BashShell) Name() string {
	return "bash"
}

// Detect attempts to identify the user's shell from a $SHELL-style path,
// defaulting to Zsh.
func Detect(shellPath string) Shell {
	if strings.Contains(shellPath, "bash") {
		return &BashShell{}
	}
	return &ZshShell{}
}

// wrapperFunction is POSIX-compatible, so zsh and bash share the body.
// Informational commands print text that is not a directory, which falls
// through to plain printing instead of a cd.
func wrapperFunction(shellName string) string {
	return fmt.Sprintf(`# dirhop %s integration: eval "$(dirhop --init %s)"
%s() {
    local target
    target="$(dirhop "$@")" || return $?
    if [ -n "$target" ] && [ -d "$target" ]; then
        cd "$target" || return 1
    elif [ -n "$target" ]; then
        printf '%%s\n' "$target"
    fi
}
`, shellName, shellName, WrapperName)
}
