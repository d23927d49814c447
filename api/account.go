package api

import (
	"context"

	"github.com/camoo/payment-api/domain"
)

// AccountAPI exposes the account balance lookup.
type AccountAPI struct {
	client *Client
}

func NewAccountAPI(client *Client) *AccountAPI {
	return &AccountAPI{client: client}
}

// Get fetches the current account balance.
func (a *AccountAPI) Get(ctx context.Context) (*domain.Account, error) {
	resp, err := a.client.Get(ctx, EndpointAccount, nil)
	if err != nil {
		return nil, err
	}
	data, err := a.client.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	nested, err := unwrap(data, "account")
	if err != nil {
		return nil, err
	}
	return domain.AccountFromMap(nested)
}

// unwrap extracts the wrapper key every response nests its payload under.
func unwrap(data map[string]any, key string) (map[string]any, error) {
	nested, ok := data[key].(map[string]any)
	if !ok {
		return nil, &domain.ShapeError{Key: key}
	}
	return nested, nil
}
