package expenses

import "errors"

// Sentinel errors for input validation and persistence failures. Callers
// discriminate with errors.Is; the wrapped message carries the detail.
var (
	// ErrInvalidDate reports a date that is not a real YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidCategory reports an empty or oversized category.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidDescription reports an oversized description.
	ErrInvalidDescription = errors.New("invalid description")
	// ErrInvalidAmount reports an amount that is not a strictly positive decimal.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrCorruptStore reports an expenses file whose content cannot be decoded
	// into valid expenses. The load is aborted, no automatic repair is attempted.
	ErrCorruptStore = errors.New("corrupt expenses file")
)
