package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirhop/internal/shell"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		shellPath string
		want      string
	}{
		{name: "bash", shellPath: "/bin/bash", want: "bash"},
		{name: "zsh", shellPath: "/usr/bin/zsh", want: "zsh"},
		{name: "empty defaults to zsh", shellPath: "", want: "zsh"},
		{name: "unknown defaults to zsh", shellPath: "/bin/fish", want: "zsh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shell.Detect(tt.shellPath).Name())
		})
	}
}

func TestInitSnippet(t *testing.T) {
	for _, sh := range []shell.Shell{&shell.ZshShell{}, &shell.BashShell{}} {
		snippet := sh.InitSnippet()
		assert.Contains(t, snippet, shell.WrapperName+"()")
		assert.Contains(t, snippet, `cd "$target"`)
		assert.Contains(t, snippet, "dirhop")
	}
}
