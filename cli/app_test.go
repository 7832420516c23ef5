package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbook"
	"finbook/internal/log"
)

// runApp drives the menu application with a scripted input. Scripts must
// end by exiting the application so that Run returns before the input is
// exhausted.
func runApp(t *testing.T, store *finbook.Store, script string) string {
	t.Helper()
	out := &bytes.Buffer{}
	prompt := NewPrompter(strings.NewReader(script), out)
	prompt.exit = func(int) { panic("script exhausted before exit") }

	logger := log.New(log.Config{Output: io.Discard})
	app := NewApp(store, prompt, out, logger)
	app.Run()
	return out.String()
}

func quietStore(t *testing.T) *finbook.Store {
	t.Helper()
	return finbook.NewStore(t.TempDir(), log.New(log.Config{Output: io.Discard}))
}

func TestRegisterLoginAndAddIncome(t *testing.T) {
	store := quietStore(t)

	script := strings.Join([]string{
		"2", "alice", "pw1", "a@b.com", // register
		"1", "alice", "pw1", // login
		"2",                          // income menu
		"1", "100", "Salary", "2025-01-01", // add income
		"3", // back
		"6", // exit to entry menu
		"3", // exit application
	}, "\n") + "\n"

	out := runApp(t, store, script)

	assert.Contains(t, out, "Registration successful!")
	assert.Contains(t, out, "Login successful!")
	assert.Contains(t, out, "Income added!")

	incomes := finbook.NewIncomes(store)
	require.Equal(t, 1, incomes.Len())
	assert.Equal(t, "Salary", incomes.Records()[0].Source)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := quietStore(t)

	script := strings.Join([]string{
		"1", "ghost", "nope", // login attempt with no registered user
		"3", // exit
	}, "\n") + "\n"

	out := runApp(t, store, script)

	assert.Contains(t, out, "Invalid credentials!")
	// the record menus were never reachable
	assert.NotContains(t, out, "=== MAIN MENU ===")
}

func TestInvalidChoiceRedisplaysMenu(t *testing.T) {
	store := quietStore(t)

	script := strings.Join([]string{"9", "3"}, "\n") + "\n"
	out := runApp(t, store, script)

	assert.Contains(t, out, "Invalid option")
	assert.Equal(t, 2, strings.Count(out, "=== FINANCIAL MANAGER ==="))
}

func TestLogoutReturnsToEntryMenu(t *testing.T) {
	store := quietStore(t)

	script := strings.Join([]string{
		"2", "alice", "pw1", "a@b.com", // register
		"1", "alice", "pw1", // login
		"5", "2", // profile menu, logout
		"3", // exit
	}, "\n") + "\n"

	out := runApp(t, store, script)

	assert.Contains(t, out, "Logged out successfully!")
	// the entry menu is shown again after logout
	assert.GreaterOrEqual(t, strings.Count(out, "=== FINANCIAL MANAGER ==="), 2)
}

func TestChangePasswordFlow(t *testing.T) {
	store := quietStore(t)

	script := strings.Join([]string{
		"2", "alice", "pw1", "a@b.com", // register
		"1", "alice", "pw1", // login
		"5",                 // profile menu
		"1", "wrong", "pw2", // change password, wrong current
		"1", "pw1", "pw2", // change password, correct
		"2", // logout
		"1", "alice", "pw2", // login with the new password
		"6", // exit to entry menu
		"3", // exit
	}, "\n") + "\n"

	out := runApp(t, store, script)

	assert.Contains(t, out, "Incorrect current password!")
	assert.Contains(t, out, "Password changed successfully!")
	assert.Equal(t, 2, strings.Count(out, "Login successful!"))
}

func TestViewEmptyCollections(t *testing.T) {
	store := quietStore(t)

	script := strings.Join([]string{
		"2", "alice", "pw1", "a@b.com",
		"1", "alice", "pw1",
		"1", "2", "3", // budgets: view empty, back
		"4", "2", "3", // reminders: view empty, back
		"6",
		"3",
	}, "\n") + "\n"

	out := runApp(t, store, script)

	assert.Contains(t, out, "No budgets found!")
	assert.Contains(t, out, "No reminders found!")
}

func TestCreateBudgetAndViewIt(t *testing.T) {
	store := quietStore(t)
	start := finbook.Today().Add(10)
	end := finbook.Today().Add(40)

	script := strings.Join([]string{
		"2", "alice", "pw1", "a@b.com",
		"1", "alice", "pw1",
		"1",                                    // budget menu
		"1", "Food", "300", start.String(), end.String(), // create
		"2", // view
		"3", // back
		"6",
		"3",
	}, "\n") + "\n"

	out := runApp(t, store, script)

	assert.Contains(t, out, "Budget created!")
	assert.Contains(t, out, "Food")

	budgets := finbook.NewBudgets(store)
	require.Equal(t, 1, budgets.Len())
	assert.Equal(t, "Food", budgets.Records()[0].Category)
}
