// Package renderer renders expense reports as markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/expenses"
	"github.com/shopspring/decimal"
)

// cell escapes the pipe character so that free text cannot break out of its
// markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// Expense renders a single expense to a markdown table row.
func Expense(e expenses.Expense, currency string) string {
	return fmt.Sprintf("| %s | %s | %s | %s |",
		e.Date, cell(e.Category), expenses.M(e.Amount, currency), cell(e.Description))
}

// Expenses renders an ordered list of expenses to a markdown table, one
// record per line, in the order given.
func Expenses(list []expenses.Expense, currency string) string {
	if len(list) == 0 {
		return "No expenses recorded yet.\n"
	}

	var sb strings.Builder
	sb.WriteString("| Date | Category | Amount | Description |\n")
	sb.WriteString("|------|----------|-------:|-------------|\n")
	for _, e := range list {
		sb.WriteString(Expense(e, currency))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Total renders the grand total as a single markdown line.
func Total(total expenses.Money) string {
	return fmt.Sprintf("Total spending: **%s**\n", total)
}

// CategoryTotal renders one category's total as a single markdown line.
func CategoryTotal(category string, total expenses.Money) string {
	return fmt.Sprintf("Total spending for %q: **%s**\n", category, total)
}

// CategoryTotals renders per-category subtotals and the grand total as a
// markdown table. Groups are rendered in the order given.
func CategoryTotals(totals []expenses.CategoryTotal, currency string) string {
	if len(totals) == 0 {
		return "No expenses recorded yet.\n"
	}

	var sb strings.Builder
	sb.WriteString("| Category | Total |\n")
	sb.WriteString("|----------|------:|\n")
	grand := expenses.M(decimal.Zero, currency)
	for _, ct := range totals {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", cell(ct.Category), expenses.M(ct.Amount, currency)))
		grand = grand.Add(expenses.M(ct.Amount, currency))
	}
	sb.WriteString(fmt.Sprintf("| **Total** | **%s** |\n", grand))
	return sb.String()
}
