package finbook

import (
	"encoding/json"
	"testing"
	"time"
)

// TestDateTime asserts that time() is canonical and gives comparable times.
func TestDateTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"2024-02-29", NewDate(2024, time.February, 29), false},
		{"invalid-date", Date{}, true},
		{"15/01/2025", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseDate(%q) error = %v, want error %v", tt.input, err, tt.err)
			continue
		}
		if !tt.err && got != tt.expected {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2025, time.March, 1)
	b := NewDate(2025, time.March, 2)

	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before: %v should be before %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After: %v should be after %v", b, a)
	}
	if a.After(a) || a.Before(a) {
		t.Errorf("a date must not be before or after itself")
	}
}

func TestDateAdd(t *testing.T) {
	d := NewDate(2025, time.January, 31)
	if got := d.Add(1); got != NewDate(2025, time.February, 1) {
		t.Errorf("Add(1) = %v, want 2025-02-01", got)
	}
	if got := d.Add(-31); got != NewDate(2024, time.December, 31) {
		t.Errorf("Add(-31) = %v, want 2024-12-31", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.August, 9)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() returned an unexpected error: %v", err)
	}
	if string(data) != `"2025-08-09"` {
		t.Errorf("Marshal() = %s, want %q", data, "2025-08-09")
	}

	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() returned an unexpected error: %v", err)
	}
	if got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Errorf("Unmarshal accepted garbage date")
	}
	if err := json.Unmarshal([]byte(`42`), &d); err == nil {
		t.Errorf("Unmarshal accepted a number as a date")
	}
}
