package domain

import (
	"errors"
	"testing"
	"time"
)

func validPaymentData() map[string]any {
	return map[string]any{
		"id":        float64(123),
		"amount":    float64(1000),
		"currency":  "XAF",
		"createdAt": float64(1709288100),
		"network":   "MTN",
		"status":    "success",
	}
}

func TestPaymentFromMap(t *testing.T) {
	p, err := PaymentFromMap(validPaymentData())
	if err != nil {
		t.Fatalf("PaymentFromMap error: %v", err)
	}

	if p.ID != "123" {
		t.Fatalf("expected id \"123\", got %q", p.ID)
	}
	if p.Amount.Amount.InexactFloat64() != 1000 {
		t.Fatalf("expected amount 1000, got %s", p.Amount.Amount)
	}
	if p.Amount.Currency != CurrencyXAF {
		t.Fatalf("expected XAF, got %q", p.Amount.Currency)
	}
	if p.Network != "MTN" {
		t.Fatalf("expected network MTN, got %q", p.Network)
	}
	if p.Status != "success" {
		t.Fatalf("expected status success, got %q", p.Status)
	}
	if p.CreatedAt.Unix() != 1709288100 || p.CreatedAt.Location() != time.UTC {
		t.Fatalf("unexpected createdAt: %s", p.CreatedAt)
	}
	if p.Fees != nil || p.NetAmount != nil || p.CompletedAt != nil || p.NotifiedAt != nil {
		t.Fatalf("expected absent optionals to stay nil")
	}
}

func TestPaymentFromMapStringID(t *testing.T) {
	data := validPaymentData()
	data["id"] = "TX-42"

	p, err := PaymentFromMap(data)
	if err != nil {
		t.Fatalf("PaymentFromMap error: %v", err)
	}
	if p.ID != "TX-42" {
		t.Fatalf("expected id TX-42, got %q", p.ID)
	}
}

func TestPaymentFromMapMissingRequiredFields(t *testing.T) {
	for _, field := range []string{"id", "amount", "currency", "createdAt", "network", "status"} {
		data := validPaymentData()
		delete(data, field)

		_, err := PaymentFromMap(data)
		if err == nil {
			t.Fatalf("expected error for missing %s", field)
		}
		var fe *FieldError
		if !errors.As(err, &fe) {
			t.Fatalf("expected FieldError for %s, got %T", field, err)
		}
		if fe.Field != field {
			t.Fatalf("expected field %q named in error, got %q", field, fe.Field)
		}
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField for %s, got %v", field, err)
		}
	}
}

func TestPaymentFromMapSnakeCaseAliases(t *testing.T) {
	data := map[string]any{
		"id":           "9",
		"amount":       float64(250),
		"currency":     "XOF",
		"created_at":   "2024-03-01 10:15:00",
		"network":      "ORANGE",
		"status":       "IN_PROGRESS",
		"completed_at": "2024-03-01 10:20:00",
		"notified_at":  float64(1709288400),
		"phone_number": "+237650000000",
		"net_amount":   float64(240.5),
	}

	p, err := PaymentFromMap(data)
	if err != nil {
		t.Fatalf("PaymentFromMap error: %v", err)
	}
	if p.CreatedAt.IsZero() {
		t.Fatalf("expected created_at alias to be decoded")
	}
	if p.CompletedAt == nil || p.CompletedAt.Hour() != 10 || p.CompletedAt.Minute() != 20 {
		t.Fatalf("unexpected completedAt: %v", p.CompletedAt)
	}
	if p.NotifiedAt == nil || p.NotifiedAt.Unix() != 1709288400 {
		t.Fatalf("unexpected notifiedAt: %v", p.NotifiedAt)
	}
	if p.PhoneNumber != "+237650000000" {
		t.Fatalf("unexpected phoneNumber: %q", p.PhoneNumber)
	}
	if p.NetAmount == nil || p.NetAmount.InexactFloat64() != 240.5 {
		t.Fatalf("unexpected netAmount: %v", p.NetAmount)
	}
}

func TestPaymentFromMapPrefersExactCaseKey(t *testing.T) {
	data := validPaymentData()
	data["createdAt"] = float64(1709288100)
	data["created_at"] = float64(1000000000)
	data["phoneNumber"] = "+237651111111"
	data["phone_number"] = "+237659999999"

	p, err := PaymentFromMap(data)
	if err != nil {
		t.Fatalf("PaymentFromMap error: %v", err)
	}
	if p.CreatedAt.Unix() != 1709288100 {
		t.Fatalf("expected camelCase createdAt to win, got %d", p.CreatedAt.Unix())
	}
	if p.PhoneNumber != "+237651111111" {
		t.Fatalf("expected camelCase phoneNumber to win, got %q", p.PhoneNumber)
	}
}

func TestPaymentFromMapRejectsNonNumericAmount(t *testing.T) {
	data := validPaymentData()
	data["amount"] = "a lot"

	_, err := PaymentFromMap(data)
	if !errors.Is(err, ErrBadValue) {
		t.Fatalf("expected ErrBadValue, got %v", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "amount" {
		t.Fatalf("expected amount named in error, got %v", err)
	}
}

func TestPaymentStatusNotValidated(t *testing.T) {
	data := validPaymentData()
	data["status"] = "SOMETHING_NEW"

	p, err := PaymentFromMap(data)
	if err != nil {
		t.Fatalf("PaymentFromMap error: %v", err)
	}
	if p.Status != "SOMETHING_NEW" {
		t.Fatalf("expected raw status kept, got %q", p.Status)
	}
	if Status(p.Status).Known() {
		t.Fatalf("expected unknown status label")
	}
}

func TestPaymentMap(t *testing.T) {
	data := validPaymentData()
	data["fees"] = float64(15)
	data["completedAt"] = "2024-03-01T10:20:00Z"

	p, err := PaymentFromMap(data)
	if err != nil {
		t.Fatalf("PaymentFromMap error: %v", err)
	}

	out := p.Map()
	if out["id"] != "123" {
		t.Fatalf("unexpected id: %v", out["id"])
	}
	amount, ok := out["amount"].(map[string]any)
	if !ok || amount["amount"] != float64(1000) || amount["currency"] != "XAF" {
		t.Fatalf("unexpected amount: %v", out["amount"])
	}
	if out["createdAt"] != p.CreatedAt.UTC().Format(time.RFC3339) {
		t.Fatalf("unexpected createdAt: %v", out["createdAt"])
	}
	if out["fees"] != float64(15) {
		t.Fatalf("unexpected fees: %v", out["fees"])
	}
	if out["completedAt"] != "2024-03-01T10:20:00Z" {
		t.Fatalf("unexpected completedAt: %v", out["completedAt"])
	}
	if out["netAmount"] != nil || out["notifiedAt"] != nil {
		t.Fatalf("expected nil optionals in map output")
	}
}
