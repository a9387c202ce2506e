package expenses

import "github.com/etnz/expenses/date"

// Date is the calendar date type used throughout the package.
type Date = date.Date

// Range is an inclusive date range.
type Range = date.Range

// Today returns the current date.
func Today() Date { return date.Today() }

// ParseDate parses a Date in the strict YYYY-MM-DD format.
func ParseDate(s string) (Date, error) { return date.Parse(s) }

// NewRange builds an inclusive date range; a zero bound leaves that side open.
func NewRange(from, to Date) date.Range { return date.Range{From: from, To: to} }
