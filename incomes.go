package finbook

const incomesFile = "incomes"

// Incomes manages the income collection.
type Incomes struct {
	book[Income]
}

// NewIncomes loads the income collection from the store, starting empty
// when no usable snapshot exists.
func NewIncomes(store *Store) *Incomes {
	return &Incomes{newBook[Income](store, incomesFile)}
}

// Add records a new income entry. The amount must be strictly positive.
func (b *Incomes) Add(amount Amount, source string, date Date) error {
	if !ValidAmount(amount) {
		return ErrAmount
	}
	return b.add(Income{Amount: amount, Source: source, Date: date})
}
