package auth

import (
	"context"

	"github.com/iudanet/livequery/pkg/api"
)

//go:generate moq -out transport_mock.go . Transport
//go:generate moq -out navigator_mock.go . Navigator

// Transport defines the HTTP calls the session makes to the server.
// *api.Client from internal/client/api implements it.
type Transport interface {
	// AuthURL builds the authorization page address
	AuthURL(clientID, redirectURI, state string) string

	// ExchangeCode trades an authorization code for a bearer token
	ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (*api.TokenResponse, error)

	// Do performs a JSON request, adding the bearer header when token is not empty
	Do(ctx context.Context, method, path, token string, body, result any) error
}

// Navigator sends the user to the authorization page and tells it where to come back
type Navigator interface {
	// RedirectURI is the address the authorization page redirects to with code and state
	RedirectURI() string

	// Navigate opens the authorization page
	Navigate(ctx context.Context, authURL string) error
}
