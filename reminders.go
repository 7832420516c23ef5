package finbook

const remindersFile = "reminders"

// Bounds on reminder titles.
const (
	MinTitleLen = 3
	MaxTitleLen = 50
)

// Reminders manages the reminder collection.
type Reminders struct {
	book[Reminder]
}

// NewReminders loads the reminder collection from the store, starting empty
// when no usable snapshot exists.
func NewReminders(store *Store) *Reminders {
	return &Reminders{newBook[Reminder](store, remindersFile)}
}

// Add records a new reminder. The title length must be within
// [MinTitleLen, MaxTitleLen] and the date strictly in the future;
// a violation rejects the reminder with no change to the collection.
func (b *Reminders) Add(title string, date Date, at Clock) error {
	if !ValidLength(title, MinTitleLen, MaxTitleLen) {
		return ErrTitleLength
	}
	if !date.After(Today()) {
		return ErrNotFuture
	}
	return b.add(Reminder{Title: title, Date: date, Time: at})
}
