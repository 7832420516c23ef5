package finbook

const expensesFile = "expenses"

// Expenses manages the expense collection.
type Expenses struct {
	book[Expense]
}

// NewExpenses loads the expense collection from the store, starting empty
// when no usable snapshot exists.
func NewExpenses(store *Store) *Expenses {
	return &Expenses{newBook[Expense](store, expensesFile)}
}

// Add records a new expense. The amount must be strictly positive.
func (b *Expenses) Add(amount Amount, category, method string, date Date) error {
	if !ValidAmount(amount) {
		return ErrAmount
	}
	return b.add(Expense{Amount: amount, Category: category, Method: method, Date: date})
}
