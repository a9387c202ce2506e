package expenses

import (
	"iter"

	"github.com/etnz/expenses/date"
	"github.com/shopspring/decimal"
)

// Ledger represents an ordered list of expenses.
//
// Insertion order is display order: the ledger never reorders its records,
// and every record it holds has already passed validation.
type Ledger struct {
	expenses []Expense
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{expenses: make([]Expense, 0)}
}

// Append appends expenses to this ledger, preserving insertion order.
func (l *Ledger) Append(exps ...Expense) {
	l.expenses = append(l.expenses, exps...)
}

// Len returns the number of expenses in the ledger.
func (l *Ledger) Len() int { return len(l.expenses) }

// Expenses returns an iterator that yields each expense in its original order.
// With no filter every expense is yielded; otherwise an expense is yielded
// when at least one filter accepts it.
func (l *Ledger) Expenses(filters ...func(Expense) bool) iter.Seq2[int, Expense] {
	return func(yield func(int, Expense) bool) {
		for i, e := range l.expenses {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(e) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// ByCategory returns a predicate that filters expenses by exact category
// match. Matching is case-sensitive, no normalization is applied.
func ByCategory(category string) func(Expense) bool {
	return func(e Expense) bool { return e.Category == category }
}

// InRange returns a predicate that filters expenses by date range.
func InRange(r date.Range) func(Expense) bool {
	return func(e Expense) bool { return r.Contains(e.Date) }
}

// Total computes the exact decimal sum of all expense amounts, zero when the
// ledger is empty.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// CategoryTotal is the aggregated amount spent in one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// TotalsByCategory groups expenses by exact category match and sums their
// amounts. Groups are returned in first-seen order so the output is
// deterministic for a given input order.
func (l *Ledger) TotalsByCategory() []CategoryTotal {
	index := make(map[string]int)
	totals := make([]CategoryTotal, 0)
	for _, e := range l.expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(e.Amount)
	}
	return totals
}

// Categories returns an iterator over the unique categories in first-seen order.
func (l *Ledger) Categories() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, e := range l.expenses {
			if _, ok := visited[e.Category]; ok {
				continue
			}
			visited[e.Category] = struct{}{}
			if !yield(e.Category) {
				return
			}
		}
	}
}

// OldestDate returns the date of the earliest expense in the ledger.
// It returns the zero date if the ledger has no expenses.
func (l *Ledger) OldestDate() date.Date {
	var oldest date.Date
	for i, e := range l.expenses {
		if i == 0 || e.Date.Before(oldest) {
			oldest = e.Date
		}
	}
	return oldest
}

// NewestDate returns the date of the latest expense in the ledger.
// It returns the zero date if the ledger has no expenses.
func (l *Ledger) NewestDate() date.Date {
	var newest date.Date
	for i, e := range l.expenses {
		if i == 0 || e.Date.After(newest) {
			newest = e.Date
		}
	}
	return newest
}

// Equal reports whether two ledgers hold the same expenses in the same order.
func (l *Ledger) Equal(o *Ledger) bool {
	if len(l.expenses) != len(o.expenses) {
		return false
	}
	for i, e := range l.expenses {
		if !e.Equal(o.expenses[i]) {
			return false
		}
	}
	return true
}
