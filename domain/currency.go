package domain

import "fmt"

// Currency is one of the currency codes accepted by the payment API.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyXAF Currency = "XAF"
	CurrencyXOF Currency = "XOF"
)

// Currencies lists every supported code.
func Currencies() []Currency {
	return []Currency{CurrencyEUR, CurrencyUSD, CurrencyXAF, CurrencyXOF}
}

// ParseCurrency validates a wire currency code. Any string outside the
// supported set is rejected.
func ParseCurrency(code string) (Currency, error) {
	switch c := Currency(code); c {
	case CurrencyEUR, CurrencyUSD, CurrencyXAF, CurrencyXOF:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
}

func (c Currency) String() string { return string(c) }
