package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/moneymanager"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func credit() *txCmd { return &txCmd{kind: moneymanager.Credit} }
func debit() *txCmd  { return &txCmd{kind: moneymanager.Debit} }

func TestLedgerSession(t *testing.T) {
	dir, out := setup(t)

	mustRun(t, &addUserCmd{}, "-n", "  Alice ")
	assert.Contains(t, out.String(), `Added user "Alice"`)
	mustRun(t, &addUserCmd{}, "-n", "Bob")

	mustRun(t, credit(), "-u", "alice", "-a", "500", "-r", "salary")
	assert.Contains(t, out.String(), `credit +₹500.00 for "salary", balance ₹500.00`)
	mustRun(t, debit(), "-u", "Alice", "-a", "200.50", "-r", "coffee")
	assert.Contains(t, out.String(), `debit -₹200.50 for "coffee", balance ₹299.50`)

	_, err := os.Stat(filepath.Join(dir, moneymanager.DefaultKey+".json"))
	require.NoError(t, err, "the ledger is stored in the directory")

	out.Reset()
	mustRun(t, &usersCmd{})
	assert.Contains(t, out.String(), "| Alice | ₹299.50 | 2 |")
	assert.Contains(t, out.String(), "| Bob | ₹0.00 | 0 |")
	assert.Contains(t, out.String(), "**Total balance: ₹299.50**")

	out.Reset()
	mustRun(t, &historyCmd{}, "-u", "Alice")
	history := out.String()
	assert.Contains(t, history, "| less than a minute ago | -₹200.50 | coffee |")
	assert.Contains(t, history, "| less than a minute ago | +₹500.00 | salary |")
	assert.Less(t, strings.Index(history, "coffee"), strings.Index(history, "salary"), "most recent first")

	out.Reset()
	mustRun(t, &historyCmd{}, "-u", "Alice", "-head", "1")
	assert.NotContains(t, out.String(), "salary")
	assert.Contains(t, out.String(), "_1 older transactions not shown._")

	out.Reset()
	mustRun(t, &deleteUserCmd{}, "-u", "alice")
	assert.Contains(t, out.String(), `Deleted user "Alice" and 2 transactions`)

	out.Reset()
	mustRun(t, &usersCmd{})
	assert.NotContains(t, out.String(), "Alice")
	assert.Contains(t, out.String(), "**Total balance: ₹0.00**")
}

func TestAddUser_Rejected(t *testing.T) {
	setup(t)
	mustRun(t, &addUserCmd{}, "-n", "Alice")

	assert.Equal(t, subcommands.ExitUsageError, run(t, &addUserCmd{}, "-n", " alice "), "duplicate")
	assert.Equal(t, subcommands.ExitUsageError, run(t, &addUserCmd{}, "-n", "   "), "blank")
	assert.Equal(t, subcommands.ExitUsageError, run(t, &addUserCmd{}), "missing")

	override(t, maxUsersFlag, 2)
	mustRun(t, &addUserCmd{}, "-n", "Bob")
	assert.Equal(t, subcommands.ExitUsageError, run(t, &addUserCmd{}, "-n", "Carol"), "too many users")
}

func TestTransaction_Rejected(t *testing.T) {
	_, out := setup(t)
	mustRun(t, &addUserCmd{}, "-n", "Alice")

	tests := []struct {
		name string
		args []string
	}{
		{"zero amount", []string{"-u", "Alice", "-a", "0", "-r", "x"}},
		{"negative amount", []string{"-u", "Alice", "-a", "-5", "-r", "x"}},
		{"not a number", []string{"-u", "Alice", "-a", "ten", "-r", "x"}},
		{"blank reason", []string{"-u", "Alice", "-a", "5", "-r", "  "}},
		{"unknown user", []string{"-u", "Zoe", "-a", "5", "-r", "x"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, subcommands.ExitUsageError, run(t, debit(), tc.args...))
		})
	}

	out.Reset()
	mustRun(t, &usersCmd{})
	assert.Contains(t, out.String(), "| Alice | ₹0.00 | 0 |", "nothing was recorded")
}

func TestDeleteUser_ByID(t *testing.T) {
	_, out := setup(t)
	mustRun(t, &addUserCmd{}, "-n", "Alice")
	mustRun(t, &addUserCmd{}, "-n", "Bob")

	out.Reset()
	mustRun(t, &queryCmd{}, "-path", "$.users[1].id")
	id := strings.Trim(strings.TrimSpace(out.String()), `"`)
	require.NotEmpty(t, id)

	mustRun(t, &deleteUserCmd{}, "-u", id)
	assert.Equal(t, subcommands.ExitUsageError, run(t, &deleteUserCmd{}, "-u", id), "already deleted")

	out.Reset()
	mustRun(t, &queryCmd{}, "-path", "$.users[*].name")
	assert.JSONEq(t, `["Alice"]`, out.String())
}

func TestCurrency(t *testing.T) {
	_, out := setup(t)
	override(t, currencyFlag, "usd")
	mustRun(t, &addUserCmd{}, "-n", "Alice")
	mustRun(t, credit(), "-u", "Alice", "-a", "1234.5", "-r", "salary")

	out.Reset()
	mustRun(t, &usersCmd{})
	assert.Contains(t, out.String(), "| Alice | $1,234.50 | 1 |")
}

func TestTopic(t *testing.T) {
	_, out := setup(t)

	mustRun(t, &topicCmd{})
	assert.Contains(t, out.String(), "# mm user manual")

	out.Reset()
	mustRun(t, &topicCmd{}, "storage", "config")
	assert.Contains(t, out.String(), "# Storage")
	assert.Contains(t, out.String(), "# Configuration")

	assert.Equal(t, subcommands.ExitUsageError, run(t, &topicCmd{}, "nope"))
	assert.Equal(t, subcommands.ExitUsageError, run(t, &topicCmd{}, "storage", "nope"), "every topic must exist")

	out.Reset()
	mustRun(t, &topicCmd{}, "-list")
	assert.Equal(t, "config\ndata\nstorage\n", out.String())
}
