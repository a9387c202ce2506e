package expenses

import (
	"github.com/etnz/expenses/date"
	"github.com/shopspring/decimal"
)

// dec is a helper for tests to build exact decimals from literals.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// exp is a helper for tests to build a valid expense from literals.
func exp(day, category, description, amount string) Expense {
	return NewExpense(date.MustParse(day), category, description, dec(amount))
}
