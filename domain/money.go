package domain

import "github.com/shopspring/decimal"

// Money pairs a monetary amount with its currency. It is a transport/display
// value only: no arithmetic is provided.
type Money struct {
	Amount   decimal.Decimal
	Currency Currency
}

// NewMoney builds a Money from a wire amount and currency code. The code is
// validated against the supported currency set.
func NewMoney(amount decimal.Decimal, code string) (Money, error) {
	currency, err := ParseCurrency(code)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// Map returns the wire representation: a plain number and the currency code.
func (m Money) Map() map[string]any {
	return map[string]any{
		"amount":   m.Amount.InexactFloat64(),
		"currency": m.Currency.String(),
	}
}
