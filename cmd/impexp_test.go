package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport(t *testing.T) {
	_, out := setup(t)
	mustRun(t, &addUserCmd{}, "-n", "Alice")
	mustRun(t, credit(), "-u", "Alice", "-a", "500.10", "-r", "salary")
	mustRun(t, debit(), "-u", "Alice", "-a", "200", "-r", "coffee")
	mustRun(t, &addUserCmd{}, "-n", "Bob")

	file := filepath.Join(t.TempDir(), "export.json")
	mustRun(t, &exportCmd{}, "-o", file)
	out.Reset()
	mustRun(t, &exportCmd{})
	exported := out.String()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, exported, string(data), "-o and stdout write the same document")
	assert.Contains(t, exported, `{"version":1,"users":[`)

	// into another, empty, ledger.
	override(t, storeDSN, t.TempDir())
	out.Reset()
	mustRun(t, &importCmd{}, "-f", file)
	assert.Contains(t, out.String(), "Imported 2 users")

	out.Reset()
	mustRun(t, &exportCmd{})
	assert.Equal(t, exported, out.String(), "ids, timestamps and order survive")

	assert.Equal(t, subcommands.ExitUsageError, run(t, &importCmd{}, "-f", file), "not empty without -force")
	mustRun(t, &importCmd{}, "-f", file, "-force")
}

func TestImport_Legacy(t *testing.T) {
	_, out := setup(t)
	legacy := `[{"id":"1736412000000","name":"Ravi","balance":0.30000000000000004,"transactions":[
		{"id":"1736412050000","amount":0.2,"reason":"tea","date":"2025-01-09T08:40:50.000Z","type":"add"},
		{"id":"1736412040000","amount":0.1,"reason":"biscuit","date":"2025-01-09T08:40:40.000Z","type":"add"}
	]}]`
	file := filepath.Join(t.TempDir(), "legacy.json")
	require.NoError(t, os.WriteFile(file, []byte(legacy), 0o644))

	mustRun(t, &importCmd{}, "-f", file)

	out.Reset()
	mustRun(t, &usersCmd{})
	assert.Contains(t, out.String(), "| Ravi | ₹0.30 | 2 |")

	out.Reset()
	mustRun(t, &queryCmd{}, "-path", "$.users[0].balance")
	assert.JSONEq(t, `0.3`, out.String(), "balance recomputed exactly")
}

func TestImport_Invalid(t *testing.T) {
	dir := t.TempDir()
	setup(t)

	assert.Equal(t, subcommands.ExitUsageError, run(t, &importCmd{}), "missing -f")
	assert.Equal(t, subcommands.ExitFailure, run(t, &importCmd{}, "-f", filepath.Join(dir, "absent.json")))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"version":1,"users":[{"id":"1","name":"A","balance":10,"transactions":[]}]}`), 0o644))
	assert.Equal(t, subcommands.ExitFailure, run(t, &importCmd{}, "-f", bad), "balance does not match transactions")
}

func TestQuery_InvalidPath(t *testing.T) {
	setup(t)
	assert.Equal(t, subcommands.ExitUsageError, run(t, &queryCmd{}, "-path", "$.users["))
}
