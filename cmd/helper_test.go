package cmd

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

// override sets *p to v for the duration of the test.
func override[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

// clearEnv unsets the MM_* variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{EnvStore, EnvDSN, EnvKey, EnvCurrency, EnvMaxUsers, EnvLogLevel} {
		t.Setenv(env, "") // restores the variable on cleanup
		os.Unsetenv(env)
	}
}

// setup points the application at an empty dir storage and captures stdout.
func setup(t *testing.T) (dir string, out *bytes.Buffer) {
	t.Helper()
	clearEnv(t)
	dir = t.TempDir()
	out = new(bytes.Buffer)

	override(t, envFile, "")
	override(t, storeKind, "dir")
	override(t, storeDSN, dir)
	override(t, storeKey, "")
	override(t, currencyFlag, "")
	override(t, maxUsersFlag, -1)
	override(t, logLevel, "error")
	override(t, rawMarkdown, true)
	override[io.Writer](t, &stdout, out)
	return dir, out
}

// run parses args for c and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return c.Execute(context.Background(), f)
}

// mustRun is run for commands expected to succeed.
func mustRun(t *testing.T, c subcommands.Command, args ...string) {
	t.Helper()
	require.Equal(t, subcommands.ExitSuccess, run(t, c, args...), "%s %v", c.Name(), args)
}
