package expenses

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	// A multi-line string representing a JSONL stream, with an empty line.
	jsonlStream := `
{"date":"2024-01-15","category":"food","description":"lunch","amount":12.5}
{"date":"2024-01-16","category":"food","description":"dinner","amount":20}

{"date":"2024-01-16","category":"travel","description":"bus","amount":3.25}
`
	ledger, err := DecodeLedger(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	if ledger.Len() != 3 {
		t.Fatalf("DecodeLedger() decoded %d expenses, want 3", ledger.Len())
	}
	if got := ledger.Total(); !got.Equal(dec("35.75")) {
		t.Errorf("Total() = %s, want 35.75", got)
	}

	want := exp("2024-01-15", "food", "lunch", "12.5")
	for i, e := range ledger.Expenses() {
		if i == 0 && !e.Equal(want) {
			t.Errorf("first expense = %v, want %v", e, want)
		}
	}
}

func TestDecodeLedger_Corrupt(t *testing.T) {
	testCases := []struct {
		name   string
		stream string
	}{
		{name: "not json", stream: "this is not json\n"},
		{name: "json but wrong shape", stream: `{"date":42}` + "\n"},
		{name: "invalid date in file", stream: `{"date":"2024-13-40","category":"food","description":"","amount":1}` + "\n"},
		{name: "negative amount in file", stream: `{"date":"2024-01-15","category":"food","description":"","amount":-1}` + "\n"},
		{name: "empty category in file", stream: `{"date":"2024-01-15","category":"","description":"","amount":1}` + "\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.stream))
			if !errors.Is(err, ErrCorruptStore) {
				t.Errorf("DecodeLedger() error = %v, want %v", err, ErrCorruptStore)
			}
		})
	}
}

func TestEncodeLedger(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		exp("2024-01-15", "food", "lunch", "12.50"),
		exp("2024-01-16", "travel", "bus", "3.25"),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	want := `{"date":"2024-01-15","category":"food","description":"lunch","amount":12.5}
{"date":"2024-01-16","category":"travel","description":"bus","amount":3.25}
`
	if buf.String() != want {
		t.Errorf("EncodeLedger() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		exp("2024-02-01", "food", "dinner", "20.00"),
		exp("2024-01-15", "food", "lunch", "12.50"),
		exp("2024-01-16", "travel", "", "3.25"),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	got, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	// The round trip preserves every field and the insertion order.
	if !got.Equal(ledger) {
		t.Errorf("round trip does not preserve the ledger")
	}
}
