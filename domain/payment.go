package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a cash-out transaction as reported by the remote service. The
// client never mutates one: status transitions happen server-side and are
// observed by re-fetching through verify.
type Payment struct {
	ID          string
	Amount      Money
	CreatedAt   time.Time
	Network     string
	Status      string
	Fees        *decimal.Decimal
	NetAmount   *decimal.Decimal
	CompletedAt *time.Time
	NotifiedAt  *time.Time
	PhoneNumber string
	Country     string
}

// Alias lists per logical field. The exact-case key is preferred, the
// snake_case form is the fallback.
var (
	createdAtKeys   = []string{"createdAt", "created_at"}
	completedAtKeys = []string{"completedAt", "completed_at"}
	notifiedAtKeys  = []string{"notifiedAt", "notified_at"}
	phoneNumberKeys = []string{"phoneNumber", "phone_number"}
	netAmountKeys   = []string{"netAmount", "net_amount"}
)

// PaymentFromMap decodes the flat payment payload. Required fields are
// checked for presence before any coercion so the error names the first
// missing one.
func PaymentFromMap(data map[string]any) (*Payment, error) {
	required := []struct {
		name string
		keys []string
	}{
		{"id", []string{"id"}},
		{"amount", []string{"amount"}},
		{"currency", []string{"currency"}},
		{"createdAt", createdAtKeys},
		{"network", []string{"network"}},
		{"status", []string{"status"}},
	}
	for _, field := range required {
		if _, ok := pickValue(data, field.keys...); !ok {
			return nil, &FieldError{Model: "Payment", Field: field.name, Err: ErrMissingField}
		}
	}

	rawID, _ := pickValue(data, "id")
	id, err := toIdentifier(rawID)
	if err != nil {
		return nil, &FieldError{Model: "Payment", Field: "id", Err: err}
	}

	rawAmount, _ := pickValue(data, "amount")
	amount, err := toDecimal(rawAmount)
	if err != nil {
		return nil, &FieldError{Model: "Payment", Field: "amount", Err: err}
	}
	rawCurrency, _ := pickValue(data, "currency")
	code, err := toText(rawCurrency)
	if err != nil {
		return nil, &FieldError{Model: "Payment", Field: "currency", Err: err}
	}
	money, err := NewMoney(amount, code)
	if err != nil {
		return nil, &FieldError{Model: "Payment", Field: "currency", Err: err}
	}

	rawCreated, _ := pickValue(data, createdAtKeys...)
	createdAt, err := toTime(rawCreated)
	if err != nil {
		return nil, &FieldError{Model: "Payment", Field: "createdAt", Err: err}
	}

	rawNetwork, _ := pickValue(data, "network")
	network, err := toText(rawNetwork)
	if err != nil {
		return nil, &FieldError{Model: "Payment", Field: "network", Err: err}
	}
	rawStatus, _ := pickValue(data, "status")
	status, err := toText(rawStatus)
	if err != nil {
		return nil, &FieldError{Model: "Payment", Field: "status", Err: err}
	}

	p := &Payment{
		ID:        id,
		Amount:    money,
		CreatedAt: createdAt,
		Network:   network,
		Status:    status,
	}

	if v, ok := pickValue(data, "fees"); ok {
		fees, err := toDecimal(v)
		if err != nil {
			return nil, &FieldError{Model: "Payment", Field: "fees", Err: err}
		}
		p.Fees = &fees
	}
	if v, ok := pickValue(data, netAmountKeys...); ok {
		net, err := toDecimal(v)
		if err != nil {
			return nil, &FieldError{Model: "Payment", Field: "netAmount", Err: err}
		}
		p.NetAmount = &net
	}
	if v, ok := pickValue(data, completedAtKeys...); ok {
		at, err := toTime(v)
		if err != nil {
			return nil, &FieldError{Model: "Payment", Field: "completedAt", Err: err}
		}
		p.CompletedAt = &at
	}
	if v, ok := pickValue(data, notifiedAtKeys...); ok {
		at, err := toTime(v)
		if err != nil {
			return nil, &FieldError{Model: "Payment", Field: "notifiedAt", Err: err}
		}
		p.NotifiedAt = &at
	}
	if v, ok := pickValue(data, phoneNumberKeys...); ok {
		phone, err := toText(v)
		if err != nil {
			return nil, &FieldError{Model: "Payment", Field: "phoneNumber", Err: err}
		}
		p.PhoneNumber = phone
	}
	if v, ok := pickValue(data, "country"); ok {
		country, err := toText(v)
		if err != nil {
			return nil, &FieldError{Model: "Payment", Field: "country", Err: err}
		}
		p.Country = country
	}

	return p, nil
}

// Map mirrors the constructor fields with timestamps in RFC3339 UTC.
// Absent optionals stay nil.
func (p *Payment) Map() map[string]any {
	out := map[string]any{
		"id":          p.ID,
		"amount":      p.Amount.Map(),
		"createdAt":   p.CreatedAt.UTC().Format(time.RFC3339),
		"network":     p.Network,
		"status":      p.Status,
		"fees":        nil,
		"netAmount":   nil,
		"completedAt": nil,
		"notifiedAt":  nil,
		"phoneNumber": nil,
		"country":     nil,
	}
	if p.Fees != nil {
		out["fees"] = p.Fees.InexactFloat64()
	}
	if p.NetAmount != nil {
		out["netAmount"] = p.NetAmount.InexactFloat64()
	}
	if p.CompletedAt != nil {
		out["completedAt"] = p.CompletedAt.UTC().Format(time.RFC3339)
	}
	if p.NotifiedAt != nil {
		out["notifiedAt"] = p.NotifiedAt.UTC().Format(time.RFC3339)
	}
	if p.PhoneNumber != "" {
		out["phoneNumber"] = p.PhoneNumber
	}
	if p.Country != "" {
		out["country"] = p.Country
	}
	return out
}
