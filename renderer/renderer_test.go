package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/date"
	"github.com/shopspring/decimal"
)

func exp(day, category, description, amount string) expenses.Expense {
	return expenses.NewExpense(date.MustParse(day), category, description, decimal.RequireFromString(amount))
}

func TestExpenses(t *testing.T) {
	list := []expenses.Expense{
		exp("2024-01-15", "food", "lunch", "12.50"),
		exp("2024-01-16", "travel", "bus", "3.25"),
	}

	got := Expenses(list, "EUR")

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expenses() rendered %d lines, want 4 (header, separator, 2 rows):\n%s", len(lines), got)
	}
	if !strings.Contains(lines[2], "2024-01-15") || !strings.Contains(lines[2], "food") || !strings.Contains(lines[2], "lunch") {
		t.Errorf("first row = %q, want date, category and description", lines[2])
	}
	// Insertion order is display order.
	if !strings.Contains(lines[3], "2024-01-16") {
		t.Errorf("second row = %q, want the second expense", lines[3])
	}
}

func TestExpense_EscapesPipes(t *testing.T) {
	e := exp("2024-01-15", "bars|pubs", "beer | snacks", "12.50")

	got := Expense(e, "EUR")

	if !strings.Contains(got, "bars\\|pubs") {
		t.Errorf("Expense() = %q, want category pipe escaped", got)
	}
	if !strings.Contains(got, "beer \\| snacks") {
		t.Errorf("Expense() = %q, want description pipe escaped", got)
	}
	// The row still has exactly 4 unescaped cell separators on each side.
	cells := strings.Split(strings.ReplaceAll(got, "\\|", ""), "|")
	if len(cells) != 6 {
		t.Errorf("Expense() = %q, want 4 cells", got)
	}
}

func TestExpenses_Empty(t *testing.T) {
	got := Expenses(nil, "EUR")
	if !strings.Contains(got, "No expenses recorded yet.") {
		t.Errorf("Expenses(nil) = %q, want the empty message", got)
	}
}

func TestTotal(t *testing.T) {
	got := Total(expenses.M(decimal.RequireFromString("35.75"), "EUR"))
	if !strings.Contains(got, "35.75") {
		t.Errorf("Total() = %q, want it to contain 35.75", got)
	}
}

func TestCategoryTotals(t *testing.T) {
	totals := []expenses.CategoryTotal{
		{Category: "food", Amount: decimal.RequireFromString("32.50")},
		{Category: "travel", Amount: decimal.RequireFromString("3.25")},
	}

	got := CategoryTotals(totals, "EUR")

	foodAt := strings.Index(got, "food")
	travelAt := strings.Index(got, "travel")
	if foodAt < 0 || travelAt < 0 || foodAt > travelAt {
		t.Errorf("CategoryTotals() does not keep the given group order:\n%s", got)
	}
	if !strings.Contains(got, "35.75") {
		t.Errorf("CategoryTotals() does not render the grand total:\n%s", got)
	}
}
