package domain

import (
	"errors"
	"testing"
	"time"
)

func TestAccountFromMap(t *testing.T) {
	account, err := AccountFromMap(map[string]any{
		"amount":   float64(237000),
		"currency": "XAF",
		"date":     "2024-03-01 10:15:00",
	})
	if err != nil {
		t.Fatalf("AccountFromMap error: %v", err)
	}

	if account.Balance.Currency != CurrencyXAF {
		t.Fatalf("expected XAF, got %q", account.Balance.Currency)
	}
	if account.Balance.Amount.InexactFloat64() != 237000 {
		t.Fatalf("expected balance 237000, got %s", account.Balance.Amount)
	}
	want := time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC)
	if !account.ViewedAt.Equal(want) {
		t.Fatalf("expected viewedAt %s, got %s", want, account.ViewedAt)
	}
	if account.ViewedAt.Location() != time.UTC {
		t.Fatalf("expected UTC viewedAt, got %s", account.ViewedAt.Location())
	}
}

func TestAccountFromMapUnixTimestamp(t *testing.T) {
	account, err := AccountFromMap(map[string]any{
		"amount":   float64(10),
		"currency": "EUR",
		"date":     float64(1709288100),
	})
	if err != nil {
		t.Fatalf("AccountFromMap error: %v", err)
	}
	if got := account.ViewedAt.Unix(); got != 1709288100 {
		t.Fatalf("expected unix 1709288100, got %d", got)
	}
}

func TestAccountFromMapMissingFields(t *testing.T) {
	cases := []struct {
		name string
		data map[string]any
	}{
		{"amount", map[string]any{"currency": "XAF", "date": "2024-03-01"}},
		{"currency", map[string]any{"amount": float64(1), "date": "2024-03-01"}},
		{"date", map[string]any{"amount": float64(1), "currency": "XAF"}},
	}
	for _, c := range cases {
		_, err := AccountFromMap(c.data)
		if err == nil {
			t.Fatalf("expected error for missing %s", c.name)
		}
		var fe *FieldError
		if !errors.As(err, &fe) {
			t.Fatalf("expected FieldError, got %T", err)
		}
		if fe.Field != c.name {
			t.Fatalf("expected field %q, got %q", c.name, fe.Field)
		}
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	}
}

func TestAccountFromMapRejectsBadCurrency(t *testing.T) {
	_, err := AccountFromMap(map[string]any{
		"amount":   float64(1),
		"currency": "GBP",
		"date":     "2024-03-01",
	})
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestAccountMapRoundTrip(t *testing.T) {
	account, err := AccountFromMap(map[string]any{
		"amount":   float64(500.25),
		"currency": "USD",
		"date":     "2024-03-01T10:15:00Z",
	})
	if err != nil {
		t.Fatalf("AccountFromMap error: %v", err)
	}

	out := account.Map()
	balance, ok := out["balance"].(map[string]any)
	if !ok {
		t.Fatalf("expected balance mapping, got %T", out["balance"])
	}
	if balance["amount"] != 500.25 || balance["currency"] != "USD" {
		t.Fatalf("unexpected balance: %v", balance)
	}
	if out["viewedAt"] != "2024-03-01T10:15:00Z" {
		t.Fatalf("unexpected viewedAt: %v", out["viewedAt"])
	}
}
