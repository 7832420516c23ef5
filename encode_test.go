package finbook

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeRecords(t *testing.T) {
	// A multi-line JSONL stream with a blank line that must be skipped.
	jsonlStream := `
{"amount":100,"source":"Salary","date":"2025-01-01"}

{"amount":25.5,"source":"Refund","date":"2025-01-03"}
`
	recs, err := DecodeRecords[Income](strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeRecords() returned an unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("DecodeRecords() decoded wrong number of records. Got: %d, want: 2", len(recs))
	}

	want := []Income{
		{Amount: A(100), Source: "Salary", Date: MustParseDate("2025-01-01")},
		{Amount: A(25.5), Source: "Refund", Date: MustParseDate("2025-01-03")},
	}
	for i, rec := range recs {
		if !rec.Equal(want[i]) {
			t.Errorf("record %d = %+v, want %+v", i, rec, want[i])
		}
	}
}

func TestDecodeRecords_Garbage(t *testing.T) {
	jsonlStream := `{"amount":100,"source":"Salary","date":"2025-01-01"}
this is not json
`
	if _, err := DecodeRecords[Income](strings.NewReader(jsonlStream)); err == nil {
		t.Fatalf("DecodeRecords() accepted a malformed line")
	}
}

func TestEncodeRecords_CanonicalOrder(t *testing.T) {
	recs := []Expense{
		{Amount: A(9.99), Category: "Food", Method: "Cash", Date: MustParseDate("2025-02-01")},
		{Amount: A(42), Category: "Transport", Method: "Card", Date: MustParseDate("2025-02-02")},
	}

	var buf bytes.Buffer
	if err := EncodeRecords(&buf, recs); err != nil {
		t.Fatalf("EncodeRecords() returned an unexpected error: %v", err)
	}

	want := `{"amount":9.99,"category":"Food","method":"Cash","date":"2025-02-01"}
{"amount":42,"category":"Transport","method":"Card","date":"2025-02-02"}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeRecords() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

// TestEncodeDecodeRoundTrip verifies that a collection survives a
// save/load cycle with order and content intact, for every record type.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	budgets := []Budget{
		{Category: "Food", Limit: A(300), Start: MustParseDate("2025-09-01"), End: MustParseDate("2025-09-30")},
		{Category: "Food", Limit: A(300), Start: MustParseDate("2025-09-01"), End: MustParseDate("2025-09-30")}, // duplicates are permitted
	}
	var buf bytes.Buffer
	if err := EncodeRecords(&buf, budgets); err != nil {
		t.Fatalf("EncodeRecords() returned an unexpected error: %v", err)
	}
	got, err := DecodeRecords[Budget](&buf)
	if err != nil {
		t.Fatalf("DecodeRecords() returned an unexpected error: %v", err)
	}
	if len(got) != len(budgets) {
		t.Fatalf("round trip changed collection length: got %d, want %d", len(got), len(budgets))
	}
	for i := range budgets {
		if !got[i].Equal(budgets[i]) {
			t.Errorf("record %d = %+v, want %+v", i, got[i], budgets[i])
		}
	}

	reminders := []Reminder{
		{Title: "Pay rent", Date: MustParseDate("2025-10-01"), Time: MustParseClock("09:00")},
	}
	buf.Reset()
	if err := EncodeRecords(&buf, reminders); err != nil {
		t.Fatalf("EncodeRecords() returned an unexpected error: %v", err)
	}
	gotRem, err := DecodeRecords[Reminder](&buf)
	if err != nil {
		t.Fatalf("DecodeRecords() returned an unexpected error: %v", err)
	}
	if len(gotRem) != 1 || !gotRem[0].Equal(reminders[0]) {
		t.Errorf("reminder round trip = %+v, want %+v", gotRem, reminders)
	}
}
