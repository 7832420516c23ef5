package finbook

const budgetsFile = "budgets"

// Budgets manages the budget collection.
type Budgets struct {
	book[Budget]
}

// NewBudgets loads the budget collection from the store, starting empty
// when no usable snapshot exists.
func NewBudgets(store *Store) *Budgets {
	return &Budgets{newBook[Budget](store, budgetsFile)}
}

// Add records a new budget. The period must lie strictly in the future and
// the end date must be strictly after the start date; a violation rejects
// the budget with no change to the collection in memory or on disk.
func (b *Budgets) Add(category string, limit Amount, start, end Date) error {
	if !ValidAmount(limit) {
		return ErrAmount
	}
	if !start.After(Today()) {
		return ErrNotFuture
	}
	if !ValidRange(start, end) {
		return ErrDateRange
	}
	return b.add(Budget{Category: category, Limit: limit, Start: start, End: end})
}
