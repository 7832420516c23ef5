package finbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Records are persisted as JSONL: one JSON object per line, in insertion
// order. Each collection file holds records of exactly one type, so the
// codec is parameterized by the record type instead of dispatching on a
// type tag.

// EncodeRecord marshals a single record to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeRecord[T any](w io.Writer, rec T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeRecords writes a whole collection to an io.Writer in JSONL format,
// preserving insertion order.
func EncodeRecords[T any](w io.Writer, recs []T) error {
	for _, rec := range recs {
		if err := EncodeRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRecords decodes a collection from a stream of JSONL data,
// skipping empty lines. Record order follows line order.
func DecodeRecords[T any](r io.Reader) ([]T, error) {
	recs := make([]T, 0)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var rec T
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("could not decode record line %q: %w", string(lineBytes), err)
		}
		recs = append(recs, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return recs, nil
}
