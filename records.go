package finbook

// This file defines the four record types a user can keep in their book.
// Records are immutable values: once added to a collection they are never
// updated or deleted.

// Budget represents a spending limit for a category over a period
// defined by a start and an end date.
type Budget struct {
	Category string `json:"category"`
	Limit    Amount `json:"limit"`
	Start    Date   `json:"start"`
	End      Date   `json:"end"`
}

// Equal reports whether two budgets have the same content.
func (b Budget) Equal(o Budget) bool {
	return b.Category == o.Category && b.Limit.Equal(o.Limit) && b.Start == o.Start && b.End == o.End
}

// MarshalJSON implements the json.Marshaler interface for Budget.
func (b Budget) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("category", b.Category)
	w.Append("limit", b.Limit)
	w.Append("start", b.Start)
	w.Append("end", b.End)
	return w.MarshalJSON()
}

// Income represents money received from a source on a given date.
type Income struct {
	Amount Amount `json:"amount"`
	Source string `json:"source"`
	Date   Date   `json:"date"`
}

// Equal reports whether two income entries have the same content.
func (i Income) Equal(o Income) bool {
	return i.Amount.Equal(o.Amount) && i.Source == o.Source && i.Date == o.Date
}

// MarshalJSON implements the json.Marshaler interface for Income.
func (i Income) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", i.Amount)
	w.Append("source", i.Source)
	w.Append("date", i.Date)
	return w.MarshalJSON()
}

// Expense represents money spent on a category with a payment method
// on a given date.
type Expense struct {
	Amount   Amount `json:"amount"`
	Category string `json:"category"`
	Method   string `json:"method"` // payment method, e.g. "Cash", "Credit Card"
	Date     Date   `json:"date"`
}

// Equal reports whether two expenses have the same content.
func (e Expense) Equal(o Expense) bool {
	return e.Amount.Equal(o.Amount) && e.Category == o.Category && e.Method == o.Method && e.Date == o.Date
}

// MarshalJSON implements the json.Marshaler interface for Expense.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", e.Amount)
	w.Append("category", e.Category)
	w.Append("method", e.Method)
	w.Append("date", e.Date)
	return w.MarshalJSON()
}

// Reminder represents a note to the user for a future date and time of day.
type Reminder struct {
	Title string `json:"title"`
	Date  Date   `json:"date"`
	Time  Clock  `json:"time"`
}

// Equal reports whether two reminders have the same content.
func (r Reminder) Equal(o Reminder) bool {
	return r.Title == o.Title && r.Date == o.Date && r.Time == o.Time
}

// MarshalJSON implements the json.Marshaler interface for Reminder.
func (r Reminder) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("title", r.Title)
	w.Append("date", r.Date)
	w.Append("time", r.Time)
	return w.MarshalJSON()
}
