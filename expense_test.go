package expenses

import (
	"errors"
	"strings"
	"testing"
)

func TestParseExpense(t *testing.T) {
	e, err := ParseExpense("2024-01-15", "food", "lunch", "12.50")
	if err != nil {
		t.Fatalf("ParseExpense() returned an unexpected error: %v", err)
	}

	want := exp("2024-01-15", "food", "lunch", "12.50")
	if !e.Equal(want) {
		t.Errorf("ParseExpense() = %v, want %v", e, want)
	}
}

func TestParseExpense_TrimsFields(t *testing.T) {
	e, err := ParseExpense(" 2024-01-15 ", "  food ", " lunch ", " 12.50 ")
	if err != nil {
		t.Fatalf("ParseExpense() returned an unexpected error: %v", err)
	}
	if e.Category != "food" || e.Description != "lunch" {
		t.Errorf("ParseExpense() did not trim fields: %v", e)
	}
}

func TestParseExpense_EmptyDescriptionAllowed(t *testing.T) {
	if _, err := ParseExpense("2024-01-15", "food", "", "12.50"); err != nil {
		t.Errorf("ParseExpense() rejected an empty description: %v", err)
	}
}

func TestParseExpense_Rejections(t *testing.T) {
	testCases := []struct {
		name                         string
		date, category, desc, amount string
		wantErr                      error
	}{
		{name: "impossible date", date: "2024-13-40", category: "food", amount: "10", wantErr: ErrInvalidDate},
		{name: "unparseable date", date: "someday", category: "food", amount: "10", wantErr: ErrInvalidDate},
		{name: "empty date", date: "", category: "food", amount: "10", wantErr: ErrInvalidDate},
		{name: "empty category", date: "2024-01-15", category: "", amount: "10", wantErr: ErrInvalidCategory},
		{name: "blank category", date: "2024-01-15", category: "   ", amount: "10", wantErr: ErrInvalidCategory},
		{name: "category too long", date: "2024-01-15", category: strings.Repeat("x", MaxCategoryLen+1), amount: "10", wantErr: ErrInvalidCategory},
		{name: "description too long", date: "2024-01-15", category: "food", desc: strings.Repeat("x", MaxDescriptionLen+1), amount: "10", wantErr: ErrInvalidDescription},
		{name: "amount zero", date: "2024-01-15", category: "food", amount: "0", wantErr: ErrInvalidAmount},
		{name: "amount negative", date: "2024-01-15", category: "food", amount: "-5", wantErr: ErrInvalidAmount},
		{name: "amount not a number", date: "2024-01-15", category: "food", amount: "abc", wantErr: ErrInvalidAmount},
		{name: "amount empty", date: "2024-01-15", category: "food", amount: "", wantErr: ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseExpense(tc.date, tc.category, tc.desc, tc.amount)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ParseExpense() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestExpenseValidate(t *testing.T) {
	if err := exp("2024-01-15", "food", "lunch", "12.50").Validate(); err != nil {
		t.Errorf("Validate() rejected a valid expense: %v", err)
	}

	invalid := Expense{Category: "food", Amount: dec("10")}
	if err := invalid.Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Validate() error = %v, want %v", err, ErrInvalidDate)
	}

	negative := exp("2024-01-15", "food", "", "1")
	negative.Amount = dec("-1")
	if err := negative.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Validate() error = %v, want %v", err, ErrInvalidAmount)
	}
}

func TestExpenseMarshalJSON(t *testing.T) {
	e := exp("2024-01-15", "food", "lunch", "12.50")

	got, err := e.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() returned an unexpected error: %v", err)
	}

	// Keys are in canonical order and the amount carries its full digits.
	want := `{"date":"2024-01-15","category":"food","description":"lunch","amount":12.5}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestExpenseJSONRoundTrip(t *testing.T) {
	e := exp("2024-01-16", "travel", "bus", "3.25")

	data, err := e.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() returned an unexpected error: %v", err)
	}
	var got Expense
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() returned an unexpected error: %v", err)
	}
	if !got.Equal(e) {
		t.Errorf("round trip = %v, want %v", got, e)
	}
}
