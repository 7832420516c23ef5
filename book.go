package finbook

import "slices"

// book is the common core of all record managers. It exclusively owns one
// ordered collection of records, loaded from its snapshot at construction
// and rewritten wholesale after every mutation. Duplicates are permitted
// and insertion order is preserved.
type book[T any] struct {
	name  string
	store *Store
	recs  []T
}

func newBook[T any](store *Store, name string) book[T] {
	return book[T]{name: name, store: store, recs: LoadRecords[T](store, name)}
}

// add appends the record and persists the whole collection. The append is
// kept even when the save fails; memory and disk then diverge until the
// next successful save.
func (b *book[T]) add(rec T) error {
	b.recs = append(b.recs, rec)
	return b.save()
}

func (b *book[T]) save() error {
	return SaveRecords(b.store, b.name, b.recs)
}

// Records returns a copy of the collection in insertion order.
func (b *book[T]) Records() []T { return slices.Clone(b.recs) }

// Len returns the number of records in the collection.
func (b *book[T]) Len() int { return len(b.recs) }
