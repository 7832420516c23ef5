package finbook

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Domain validation errors returned by the record books. Input-level
// errors never reach the books: the prompting layer re-asks until it
// has a conforming value.
var (
	ErrAmount        = errors.New("amount must be positive")
	ErrDateRange     = errors.New("end date must be after start date")
	ErrNotFuture     = errors.New("date must be in the future")
	ErrTitleLength   = errors.New("title must be 3-50 characters")
	ErrEmail         = errors.New("invalid email address")
	ErrNoSession     = errors.New("no user logged in")
	ErrCredentials   = errors.New("invalid credentials")
	ErrWrongPassword = errors.New("incorrect current password")
)

// ValidEmail reports whether s looks like an email address. The check is
// intentionally permissive: it only requires an "@" and a ".".
func ValidEmail(s string) bool {
	return strings.Contains(s, "@") && strings.Contains(s, ".")
}

// ValidLength reports whether the rune length of s is within [min, max] inclusive.
func ValidLength(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// ValidRange reports whether end is strictly after start.
func ValidRange(start, end Date) bool {
	return end.After(start)
}

// ValidAmount reports whether a is strictly positive.
func ValidAmount(a Amount) bool {
	return a.IsPositive()
}
