package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordcloud/internal/cli"
	wcerrors "github.com/matzehuels/wordcloud/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The level is only known after flag parsing.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		reportError(c.Logger, err)
	}
	return err
}

// reportError logs err without its code prefix; the code and the
// underlying cause, when present, go into separate keys.
func reportError(l *log.Logger, err error) {
	var kv []any
	if code := wcerrors.GetCode(err); code != "" {
		kv = append(kv, "code", code)
		var e *wcerrors.Error
		if errors.As(err, &e) && e.Cause != nil {
			kv = append(kv, "cause", e.Cause)
		}
	}
	l.Error(wcerrors.UserMessage(err), kv...)
}

// exitCode maps an error to a process exit status: 130 for interrupts,
// 2 for bad input and 1 otherwise.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return 130 // Standard shell convention for SIGINT
	}
	code := wcerrors.GetCode(err)
	if strings.HasPrefix(string(code), "INVALID_") || code == wcerrors.ErrCodeFileNotFound {
		return 2
	}
	return 1
}
