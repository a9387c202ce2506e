package expenses

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/etnz/expenses/date"
	"github.com/shopspring/decimal"
)

const (
	// MaxCategoryLen is the maximum accepted category length, in runes.
	MaxCategoryLen = 30
	// MaxDescriptionLen is the maximum accepted description length, in runes.
	MaxDescriptionLen = 120
)

// Expense is a single validated spending record. It is immutable once created.
type Expense struct {
	Date        date.Date       // Date is the calendar day the expense occurred.
	Category    string          // Category is a free-form, non-empty label.
	Description string          // Description is free-form and may be empty.
	Amount      decimal.Decimal // Amount is strictly positive, in the display currency.
}

// NewExpense creates an Expense from already-parsed fields. The result is not
// validated; use ParseExpense for caller input.
func NewExpense(day date.Date, category, description string, amount decimal.Decimal) Expense {
	return Expense{Date: day, Category: category, Description: description, Amount: amount}
}

// ParseExpense parses and validates the four textual fields of an expense.
//
// All failures are reported before anything is constructed, wrapping one of
// the ErrInvalid* sentinels. Surrounding whitespace is trimmed on every field.
func ParseExpense(dateText, category, description, amountText string) (Expense, error) {
	day, err := date.Parse(strings.TrimSpace(dateText))
	if err != nil {
		return Expense{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	category = strings.TrimSpace(category)
	if err := validateCategory(category); err != nil {
		return Expense{}, err
	}

	description = strings.TrimSpace(description)
	if err := validateDescription(description); err != nil {
		return Expense{}, err
	}

	amount, err := ParseAmount(amountText)
	if err != nil {
		return Expense{}, err
	}

	return NewExpense(day, category, description, amount), nil
}

// ParseAmount parses a strictly positive decimal amount from text.
func ParseAmount(amountText string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(amountText))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: cannot parse %q as a decimal number", ErrInvalidAmount, amountText)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s must be greater than 0", ErrInvalidAmount, amount)
	}
	return amount, nil
}

func validateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("%w: category cannot be empty", ErrInvalidCategory)
	}
	if utf8.RuneCountInString(category) > MaxCategoryLen {
		return fmt.Errorf("%w: category too long (max %d characters)", ErrInvalidCategory, MaxCategoryLen)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		return fmt.Errorf("%w: description too long (max %d characters)", ErrInvalidDescription, MaxDescriptionLen)
	}
	return nil
}

// Validate checks an already-constructed expense, typically one decoded from
// a file. Valid expenses are exactly those ParseExpense would have produced.
func (e Expense) Validate() error {
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is missing", ErrInvalidDate)
	}
	if err := validateCategory(e.Category); err != nil {
		return err
	}
	if err := validateDescription(e.Description); err != nil {
		return err
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than 0", ErrInvalidAmount, e.Amount)
	}
	return nil
}

// Equal reports whether two expenses have the same field values.
func (e Expense) Equal(o Expense) bool {
	return e.Date == o.Date &&
		e.Category == o.Category &&
		e.Description == o.Description &&
		e.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Expense with a
// canonical key order.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Date)
	w.Append("category", e.Category)
	w.Append("description", e.Description)
	w.Append("amount", e.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Expense.
func (e *Expense) UnmarshalJSON(data []byte) error {
	var temp struct {
		Date        date.Date       `json:"date"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	e.Date = temp.Date
	e.Category = temp.Category
	e.Description = temp.Description
	e.Amount = temp.Amount
	return nil
}

// String renders the expense on a single line.
func (e Expense) String() string {
	return fmt.Sprintf("%s | %-12s | %10s | %s", e.Date, e.Category, e.Amount.StringFixed(2), e.Description)
}
