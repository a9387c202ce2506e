package expenses

import "github.com/shopspring/decimal"

// Tracker owns validation, record construction and aggregation queries over
// the durable state held by a Store.
//
// Every operation is a stateless request/response cycle: the sequence is
// loaded in full, possibly appended to, and flushed back on every
// successful add. No in-memory state is retained between calls.
type Tracker struct {
	store    *Store
	currency string
}

// NewTracker creates a tracker over an explicitly constructed store. The
// currency is only used to render totals.
func NewTracker(store *Store, currency string) *Tracker {
	return &Tracker{store: store, currency: currency}
}

// Store returns the store backing this tracker.
func (t *Tracker) Store() *Store { return t.store }

// Currency returns the display currency for totals.
func (t *Tracker) Currency() string { return t.currency }

// Add validates the textual fields, and on success appends the resulting
// expense to the stored sequence and persists it.
//
// Validation happens before any read or write: a rejected input leaves the
// file untouched. It returns the constructed expense.
func (t *Tracker) Add(dateText, category, description, amountText string) (Expense, error) {
	e, err := ParseExpense(dateText, category, description, amountText)
	if err != nil {
		return Expense{}, err
	}

	ledger, err := t.store.Load()
	if err != nil {
		return Expense{}, err
	}
	ledger.Append(e)
	if err := t.store.Save(ledger); err != nil {
		return Expense{}, err
	}
	return e, nil
}

// List loads and returns the ordered expense sequence, read-only: nothing is
// mutated and nothing is written back.
func (t *Tracker) List() (*Ledger, error) {
	return t.store.Load()
}

// Total loads the sequence and returns the exact sum of all amounts, zero
// when empty.
func (t *Tracker) Total() (Money, error) {
	ledger, err := t.store.Load()
	if err != nil {
		return Money{}, err
	}
	return M(ledger.Total(), t.currency), nil
}

// TotalByCategory loads the sequence and returns the sum of amounts for one
// category, matched exactly (case-sensitive).
func (t *Tracker) TotalByCategory(category string) (Money, error) {
	ledger, err := t.store.Load()
	if err != nil {
		return Money{}, err
	}
	total := decimal.Zero
	for _, e := range ledger.Expenses(ByCategory(category)) {
		total = total.Add(e.Amount)
	}
	return M(total, t.currency), nil
}

// TotalsByCategory loads the sequence and returns the per-category sums in
// first-seen order.
func (t *Tracker) TotalsByCategory() ([]CategoryTotal, error) {
	ledger, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	return ledger.TotalsByCategory(), nil
}
