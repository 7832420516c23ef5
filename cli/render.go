package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"finbook"
)

// Listings are built as markdown tables and rendered to the terminal
// with glamour. Collections are shown in insertion order.

// BudgetsMarkdown renders the budget collection as a markdown table.
func BudgetsMarkdown(recs []finbook.Budget) string {
	var b strings.Builder
	b.WriteString("# Budgets\n\n")
	b.WriteString("| Category | Limit | Start | End |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, r := range recs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", r.Category, r.Limit, r.Start, r.End)
	}
	return b.String()
}

// IncomesMarkdown renders the income collection as a markdown table.
func IncomesMarkdown(recs []finbook.Income) string {
	var b strings.Builder
	b.WriteString("# Income\n\n")
	b.WriteString("| Amount | Source | Date |\n")
	b.WriteString("|---|---|---|\n")
	for _, r := range recs {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", r.Amount, r.Source, r.Date)
	}
	return b.String()
}

// ExpensesMarkdown renders the expense collection as a markdown table.
func ExpensesMarkdown(recs []finbook.Expense) string {
	var b strings.Builder
	b.WriteString("# Expenses\n\n")
	b.WriteString("| Amount | Category | Method | Date |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, r := range recs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", r.Amount, r.Category, r.Method, r.Date)
	}
	return b.String()
}

// RemindersMarkdown renders the reminder collection as a markdown table.
func RemindersMarkdown(recs []finbook.Reminder) string {
	var b strings.Builder
	b.WriteString("# Reminders\n\n")
	b.WriteString("| Title | Date | Time |\n")
	b.WriteString("|---|---|---|\n")
	for _, r := range recs {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", r.Title, r.Date, r.Time)
	}
	return b.String()
}

// display renders markdown to the application output, falling back to the
// raw markdown when the renderer fails.
func (a *App) display(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintln(a.out, md)
		return
	}
	fmt.Fprint(a.out, out)
}
