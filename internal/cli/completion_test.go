package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordcloud/pkg/cloud/shape"
)

func TestWriteCompletion(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeCompletion(root, shell, &buf, true); err != nil {
				t.Fatalf("writeCompletion(%s) error: %v", shell, err)
			}
			if !strings.Contains(buf.String(), appName) {
				t.Errorf("%s completion does not mention %q", shell, appName)
			}
		})
	}

	if err := writeCompletion(root, "tcsh", io.Discard, true); err == nil {
		t.Error("writeCompletion(tcsh) should fail")
	}
}

func TestShapeFlagCompletion(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	render, _, err := root.Find([]string{"render"})
	if err != nil {
		t.Fatal(err)
	}

	fn, ok := render.GetFlagCompletionFunc("shape")
	if !ok {
		t.Fatal("--shape has no completion")
	}
	values, directive := fn(render, nil, "")
	if strings.Join(values, ",") != strings.Join(shape.Names(), ",") {
		t.Errorf("completion = %v, want %v", values, shape.Names())
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v, want NoFileComp", directive)
	}
}
