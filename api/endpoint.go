package api

// Endpoint is one of the fixed remote operations. Adding one means adding a
// constant here and a method on the relevant facade.
type Endpoint string

const (
	EndpointAccount Endpoint = "/account"
	EndpointCashOut Endpoint = "/cashout"
	EndpointVerify  Endpoint = "/verify"
)

// Path returns the endpoint's path segment.
func (e Endpoint) Path() string { return string(e) }
