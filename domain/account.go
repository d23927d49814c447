package domain

import "time"

// Account is the remote account balance as observed at a point in time.
// It is built from a server response and never mutated afterwards.
type Account struct {
	Balance  Money
	ViewedAt time.Time
}

// AccountFromMap decodes the nested account payload: amount (numeric),
// currency (supported code) and date (date/time string or UNIX seconds).
func AccountFromMap(data map[string]any) (*Account, error) {
	rawAmount, ok := pickValue(data, "amount")
	if !ok {
		return nil, &FieldError{Model: "Account", Field: "amount", Err: ErrMissingField}
	}
	amount, err := toDecimal(rawAmount)
	if err != nil {
		return nil, &FieldError{Model: "Account", Field: "amount", Err: err}
	}

	rawCurrency, ok := pickValue(data, "currency")
	if !ok {
		return nil, &FieldError{Model: "Account", Field: "currency", Err: ErrMissingField}
	}
	code, err := toText(rawCurrency)
	if err != nil {
		return nil, &FieldError{Model: "Account", Field: "currency", Err: err}
	}
	balance, err := NewMoney(amount, code)
	if err != nil {
		return nil, &FieldError{Model: "Account", Field: "currency", Err: err}
	}

	rawDate, ok := pickValue(data, "date")
	if !ok {
		return nil, &FieldError{Model: "Account", Field: "date", Err: ErrMissingField}
	}
	viewedAt, err := toTime(rawDate)
	if err != nil {
		return nil, &FieldError{Model: "Account", Field: "date", Err: err}
	}

	return &Account{Balance: balance, ViewedAt: viewedAt}, nil
}

// Map mirrors the account wire shape with the viewed time in RFC3339 UTC.
func (a *Account) Map() map[string]any {
	return map[string]any{
		"balance":  a.Balance.Map(),
		"viewedAt": a.ViewedAt.UTC().Format(time.RFC3339),
	}
}
