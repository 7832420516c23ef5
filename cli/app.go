// Package cli implements the interactive menu application over the
// finbook record books: a numbered-menu loop gated by login, with
// validated prompting for every field.
package cli

import (
	"fmt"
	"io"

	"finbook"
	"finbook/internal/log"
)

// App routes menu choices to the record books. Menus before login are
// limited to login, register and exit; the record menus are reachable
// only through an active session.
type App struct {
	budgets   *finbook.Budgets
	incomes   *finbook.Incomes
	expenses  *finbook.Expenses
	reminders *finbook.Reminders
	users     *finbook.Users

	prompt *Prompter
	out    io.Writer
	log    *log.Logger
}

// NewApp loads every record book from the store and wires the menus.
func NewApp(store *finbook.Store, prompt *Prompter, out io.Writer, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &App{
		budgets:   finbook.NewBudgets(store),
		incomes:   finbook.NewIncomes(store),
		expenses:  finbook.NewExpenses(store),
		reminders: finbook.NewReminders(store),
		users:     finbook.NewUsers(store),
		prompt:    prompt,
		out:       out,
		log:       logger.WithComponent("cli"),
	}
}

// Run enters the top-level loop. It returns when the user picks Exit
// from the entry menu.
func (a *App) Run() {
	for {
		fmt.Fprintln(a.out, "\n=== FINANCIAL MANAGER ===")
		fmt.Fprintln(a.out, "1. Login\n2. Register\n3. Exit")

		switch a.prompt.NonEmpty("Choose option: ") {
		case "1":
			if sess := a.login(); sess != nil {
				a.mainMenu(sess)
			}
		case "2":
			a.register()
		case "3":
			return
		default:
			fmt.Fprintln(a.out, "Invalid option")
		}
	}
}

func (a *App) login() *finbook.Session {
	username := a.prompt.NonEmpty("Username: ")
	password := a.prompt.Password("Password: ")

	sess, err := a.users.Login(username, password)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid credentials!")
		return nil
	}
	fmt.Fprintln(a.out, "Login successful!")
	return sess
}

func (a *App) register() {
	username := a.prompt.NonEmpty("Username: ")
	password := a.prompt.Password("Password: ")
	email := a.prompt.Email("Email: ")

	if err := a.users.Register(username, password, email); err != nil {
		fmt.Fprintln(a.out, "Registration failed!")
		a.log.Warn("registration failed", "err", err)
		return
	}
	fmt.Fprintln(a.out, "Registration successful!")
}

// mainMenu is the authenticated hub. It returns when the session ends
// (logout) or the user exits back to the entry menu.
func (a *App) mainMenu(sess *finbook.Session) {
	for sess.Active() {
		fmt.Fprintln(a.out, "\n=== MAIN MENU ===")
		fmt.Fprintln(a.out, "1. Budgets\n2. Income\n3. Expenses\n4. Reminders\n5. Profile\n6. Exit")

		switch a.prompt.NonEmpty("Choose option: ") {
		case "1":
			a.budgetMenu()
		case "2":
			a.incomeMenu()
		case "3":
			a.expenseMenu()
		case "4":
			a.reminderMenu()
		case "5":
			a.profileMenu(sess)
		case "6":
			return
		default:
			fmt.Fprintln(a.out, "Invalid option")
		}
	}
}

func (a *App) budgetMenu() {
	for {
		fmt.Fprintln(a.out, "\n=== BUDGET MANAGEMENT ===")
		fmt.Fprintln(a.out, "1. Create Budget\n2. View Budgets\n3. Back")

		switch a.prompt.NonEmpty("Choose: ") {
		case "1":
			a.createBudget()
		case "2":
			if a.budgets.Len() == 0 {
				fmt.Fprintln(a.out, "No budgets found!")
				break
			}
			a.display(BudgetsMarkdown(a.budgets.Records()))
		case "3":
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice")
		}
	}
}

func (a *App) createBudget() {
	category := a.prompt.NonEmpty("Category: ")
	limit := a.prompt.PositiveAmount("Limit: $")
	start := a.prompt.FutureDate("Start Date (YYYY-MM-DD): ")
	end := a.prompt.DateAfter("End Date (YYYY-MM-DD): ", start)

	if err := a.budgets.Add(category, limit, start, end); err != nil {
		fmt.Fprintln(a.out, "Could not create budget!")
		return
	}
	fmt.Fprintln(a.out, "Budget created!")
}

func (a *App) incomeMenu() {
	for {
		fmt.Fprintln(a.out, "\n=== INCOME MANAGEMENT ===")
		fmt.Fprintln(a.out, "1. Add Income\n2. View Income\n3. Back")

		switch a.prompt.NonEmpty("Choose: ") {
		case "1":
			a.addIncome()
		case "2":
			if a.incomes.Len() == 0 {
				fmt.Fprintln(a.out, "No income records found!")
				break
			}
			a.display(IncomesMarkdown(a.incomes.Records()))
		case "3":
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice")
		}
	}
}

func (a *App) addIncome() {
	amount := a.prompt.PositiveAmount("Amount: $")
	source := a.prompt.NonEmpty("Source: ")
	date := a.prompt.Date("Date (YYYY-MM-DD): ")

	if err := a.incomes.Add(amount, source, date); err != nil {
		fmt.Fprintln(a.out, "Could not record income!")
		return
	}
	fmt.Fprintln(a.out, "Income added!")
}

func (a *App) expenseMenu() {
	for {
		fmt.Fprintln(a.out, "\n=== EXPENSE MANAGEMENT ===")
		fmt.Fprintln(a.out, "1. Add Expense\n2. View Expenses\n3. Back")

		switch a.prompt.NonEmpty("Choose: ") {
		case "1":
			a.addExpense()
		case "2":
			if a.expenses.Len() == 0 {
				fmt.Fprintln(a.out, "No expenses found!")
				break
			}
			a.display(ExpensesMarkdown(a.expenses.Records()))
		case "3":
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice")
		}
	}
}

func (a *App) addExpense() {
	amount := a.prompt.PositiveAmount("Amount: $")
	category := a.prompt.NonEmpty("Category: ")
	method := a.prompt.NonEmpty("Payment Method: ")
	date := a.prompt.Date("Date (YYYY-MM-DD): ")

	if err := a.expenses.Add(amount, category, method, date); err != nil {
		fmt.Fprintln(a.out, "Could not record expense!")
		return
	}
	fmt.Fprintln(a.out, "Expense added!")
}

func (a *App) reminderMenu() {
	for {
		fmt.Fprintln(a.out, "\n=== REMINDER MANAGEMENT ===")
		fmt.Fprintln(a.out, "1. Create Reminder\n2. View Reminders\n3. Back")

		switch a.prompt.NonEmpty("Choose: ") {
		case "1":
			a.createReminder()
		case "2":
			if a.reminders.Len() == 0 {
				fmt.Fprintln(a.out, "No reminders found!")
				break
			}
			a.display(RemindersMarkdown(a.reminders.Records()))
		case "3":
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice")
		}
	}
}

func (a *App) createReminder() {
	title := a.prompt.BoundedString("Title: ", finbook.MinTitleLen, finbook.MaxTitleLen)
	date := a.prompt.FutureDate("Date (YYYY-MM-DD): ")
	at := a.prompt.Clock("Time (HH:MM): ")

	if err := a.reminders.Add(title, date, at); err != nil {
		fmt.Fprintln(a.out, "Could not set reminder!")
		return
	}
	fmt.Fprintln(a.out, "Reminder set!")
}

// profileMenu handles password changes and logout. Logout ends the
// session, which is the only way back to the entry menu besides exiting.
func (a *App) profileMenu(sess *finbook.Session) {
	for {
		fmt.Fprintln(a.out, "\n=== PROFILE MANAGEMENT ===")
		fmt.Fprintln(a.out, "1. Change Password\n2. Logout\n3. Back")

		switch a.prompt.NonEmpty("Choose: ") {
		case "1":
			a.changePassword(sess)
		case "2":
			sess.End()
			fmt.Fprintln(a.out, "Logged out successfully!")
			return
		case "3":
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice")
		}
	}
}

func (a *App) changePassword(sess *finbook.Session) {
	oldPassword := a.prompt.Password("Enter current password: ")
	newPassword := a.prompt.Password("Enter new password: ")

	switch err := sess.ChangePassword(oldPassword, newPassword); err {
	case nil:
		fmt.Fprintln(a.out, "Password changed successfully!")
	case finbook.ErrWrongPassword:
		fmt.Fprintln(a.out, "Incorrect current password!")
	case finbook.ErrNoSession:
		fmt.Fprintln(a.out, "No user logged in!")
	default:
		fmt.Fprintln(a.out, "Could not change password!")
		a.log.Warn("password change failed", "err", err)
	}
}
