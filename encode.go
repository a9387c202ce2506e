package expenses

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes expenses from a stream of JSONL data, one JSON object
// per line, and returns them as a Ledger in file order.
//
// Empty lines are skipped. A line that cannot be decoded, or that decodes
// into an expense failing validation, aborts the whole decode with an error
// wrapping ErrCorruptStore.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var e Expense
		if err := json.Unmarshal(lineBytes, &e); err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrCorruptStore, line, string(lineBytes), err)
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptStore, line, err)
		}
		ledger.Append(e)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return ledger, nil
}

// EncodeExpense marshals a single expense to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeExpense(w io.Writer, e Expense) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal expense: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write expense: %w", err)
	}
	return nil
}

// EncodeLedger persists the expenses to an io.Writer in JSONL format, in
// insertion order, with canonical key order on every line.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	for _, e := range ledger.Expenses() {
		if err := EncodeExpense(w, e); err != nil {
			return err
		}
	}
	return nil
}
