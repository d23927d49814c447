// Package domain contains the core domain model for the Camoo Payment SDK.
//
// The domain is transport-agnostic: it does not depend on net/http or on how
// responses were fetched. The api package maps decoded wire payloads into
// these types.
package domain
