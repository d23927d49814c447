package api

import (
	"context"

	"github.com/camoo/payment-api/domain"
)

// PaymentAPI exposes cash-out initiation and verification.
type PaymentAPI struct {
	client *Client
}

func NewPaymentAPI(client *Client) *PaymentAPI {
	return &PaymentAPI{client: client}
}

// Cashout initiates a payout with the caller-supplied payload and returns
// the created payment.
func (p *PaymentAPI) Cashout(ctx context.Context, payload map[string]any) (*domain.Payment, error) {
	resp, err := p.client.Post(ctx, EndpointCashOut, payload)
	if err != nil {
		return nil, err
	}
	data, err := p.client.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	nested, err := unwrap(data, "cashOut")
	if err != nil {
		return nil, err
	}
	return domain.PaymentFromMap(nested)
}

// Verify fetches the current state of a previously initiated payment.
func (p *PaymentAPI) Verify(ctx context.Context, id string) (*domain.Payment, error) {
	resp, err := p.client.Get(ctx, EndpointVerify, map[string]string{"id": id})
	if err != nil {
		return nil, err
	}
	data, err := p.client.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	nested, err := unwrap(data, "verify")
	if err != nil {
		return nil, err
	}
	return domain.PaymentFromMap(nested)
}
