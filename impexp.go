package expenses

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to import expenses from third-party JSON
// exports (banking apps, spreadsheets exports, other trackers).
//
// The shape of such exports varies, so the caller describes where the fields
// live with JSONPath expressions. Imported records go through the exact same
// validation as records typed on the command line.

// ImportMapping locates expense fields inside a JSON export.
type ImportMapping struct {
	Records     string // path to the list of records in the document
	Date        string // paths below are relative to one record
	Category    string
	Description string
	Amount      string
}

// DefaultImportMapping maps the native export format: a JSON array of
// objects with date, category, description and amount properties.
func DefaultImportMapping() ImportMapping {
	return ImportMapping{
		Records:     "$",
		Date:        "$.date",
		Category:    "$.category",
		Description: "$.description",
		Amount:      "$.amount",
	}
}

// ImportExpenses reads a JSON document from 'r' and extracts expenses
// according to the mapping. It fails fast on the first record that does not
// validate, so a partial import is never returned.
func ImportExpenses(r io.Reader, m ImportMapping) (*Ledger, error) {
	dec := json.NewDecoder(r)
	// Keep numbers as literals so amounts stay exact all the way to decimal.
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse import document: %w", err)
	}

	jrecords, err := jsonpath.Get(m.Records, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate records path %q: %w", m.Records, err)
	}
	records, ok := jrecords.([]any)
	if !ok {
		return nil, fmt.Errorf("records path %q: want a JSON list, got %T", m.Records, jrecords)
	}

	ledger := NewLedger()
	for i, record := range records {
		dateText, err := stringAt(record, m.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: date: %w", i+1, err)
		}
		category, err := stringAt(record, m.Category)
		if err != nil {
			return nil, fmt.Errorf("record %d: category: %w", i+1, err)
		}
		// A missing description is acceptable, it imports as empty.
		description, _ := stringAt(record, m.Description)
		amountText, err := scalarAt(record, m.Amount)
		if err != nil {
			return nil, fmt.Errorf("record %d: amount: %w", i+1, err)
		}

		e, err := ParseExpense(dateText, category, description, amountText)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		ledger.Append(e)
	}
	return ledger, nil
}

// stringAt evaluates a JSONPath expression and requires a string result.
func stringAt(doc any, path string) (string, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer,
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q: want a string, got %T", path, jval)
	}
	return s, nil
}

// scalarAt evaluates a JSONPath expression and renders the result as text,
// accepting both JSON numbers and strings.
func scalarAt(doc any, path string) (string, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case json.Number:
		return v.String(), nil
	case string:
		return v, nil
	case float64:
		return fmt.Sprintf("%v", v), nil
	default:
		return "", fmt.Errorf("%q: want a number or a string, got %T", path, jval)
	}
}
