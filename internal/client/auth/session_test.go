package auth

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/livequery/internal/client/errs"
	"github.com/iudanet/livequery/internal/client/storage"
	"github.com/iudanet/livequery/internal/crypto"
	"github.com/iudanet/livequery/pkg/api"
)

// signedToken создает JWT с заданными claims
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

type sessionFixture struct {
	session    *Session
	transport  *TransportMock
	navigator  *NavigatorMock
	persistent *storage.MemoryStore
	transient  *storage.MemoryStore
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		persistent: storage.NewMemoryStore(),
		transient:  storage.NewMemoryStore(),
		transport: &TransportMock{
			AuthURLFunc: func(clientID, redirectURI, state string) string {
				q := url.Values{}
				q.Set(api.ParamClientID, clientID)
				q.Set(api.ParamRedirectURI, redirectURI)
				q.Set(api.ParamState, state)
				return "https://example.org/auth?" + q.Encode()
			},
			DoFunc: func(ctx context.Context, method, path, token string, body, result any) error {
				return nil
			},
		},
		navigator: &NavigatorMock{
			RedirectURIFunc: func() string { return "http://127.0.0.1:8765/callback" },
			NavigateFunc:    func(ctx context.Context, authURL string) error { return nil },
		},
	}
	f.session = NewSession(f.transport, f.persistent, f.transient, f.navigator, nil)
	return f
}

// prepareLogin кладет во временное хранилище то, что оставил бы LogIn
func (f *sessionFixture) prepareLogin(t *testing.T, state string) {
	t.Helper()
	ctx := context.Background()
	clientID, err := crypto.ClientIDFromSecret("secret")
	require.NoError(t, err)
	require.NoError(t, f.transient.Set(ctx, storage.CredentialClientSecret, "secret"))
	require.NoError(t, f.transient.Set(ctx, storage.CredentialClientID, clientID))
	require.NoError(t, f.transient.Set(ctx, storage.CredentialState, state))
}

func redirectURL(code, state string) *url.URL {
	return &url.URL{
		Scheme:   "http",
		Host:     "127.0.0.1:8765",
		Path:     "/callback",
		RawQuery: url.Values{api.ParamCode: {code}, api.ParamState: {state}}.Encode(),
	}
}

func TestSession_Initialize_Restore(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "owner-1", "exp": exp.Unix()})
	require.NoError(t, f.persistent.Set(ctx, storage.CredentialToken, token))
	require.NoError(t, f.persistent.Set(ctx, storage.CredentialOwnerID, "owner-1"))

	require.NoError(t, f.session.Initialize(ctx, nil))

	assert.True(t, f.session.LoggedIn())
	assert.Equal(t, token, f.session.Token())
	assert.Equal(t, "owner-1", f.session.OwnerID())
	assert.True(t, exp.Equal(f.session.Expiry()))
	assert.NoError(t, f.session.WaitReady(ctx))
	assert.Empty(t, f.transport.ExchangeCodeCalls())
}

func TestSession_Initialize_OpaqueToken(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)

	// Непрозрачный токен без owner id
	require.NoError(t, f.persistent.Set(ctx, storage.CredentialToken, "opaque"))

	require.NoError(t, f.session.Initialize(ctx, nil))
	assert.Equal(t, "opaque", f.session.Token())
	assert.Empty(t, f.session.OwnerID())
	assert.True(t, f.session.Expiry().IsZero())
}

func TestSession_Initialize_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)

	token := signedToken(t, jwt.MapClaims{"sub": "owner-1", "exp": time.Now().Add(-time.Minute).Unix()})
	require.NoError(t, f.persistent.Set(ctx, storage.CredentialToken, token))
	require.NoError(t, f.persistent.Set(ctx, storage.CredentialOwnerID, "owner-1"))

	require.NoError(t, f.session.Initialize(ctx, nil))

	assert.False(t, f.session.LoggedIn())
	_, err := f.persistent.Get(ctx, storage.CredentialToken)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)
	_, err = f.persistent.Get(ctx, storage.CredentialOwnerID)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)
}

func TestSession_Initialize_StoreError(t *testing.T) {
	storeErr := errors.New("disk failure")
	persistent := &storage.CredentialStoreMock{
		GetFunc: func(ctx context.Context, name string) (string, error) {
			return "", storeErr
		},
	}
	session := NewSession(&TransportMock{}, persistent, storage.NewMemoryStore(), &NavigatorMock{}, nil)

	err := session.Initialize(context.Background(), nil)
	assert.ErrorIs(t, err, storeErr)

	// Сессия готова даже после ошибки
	select {
	case <-session.Ready():
	default:
		t.Fatal("session must be ready after Initialize")
	}
	assert.False(t, session.LoggedIn())
}

func TestSession_Initialize_CodeExchange(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	f.prepareLogin(t, "state-1")

	f.transport.ExchangeCodeFunc = func(ctx context.Context, clientID, clientSecret, code string) (*api.TokenResponse, error) {
		return &api.TokenResponse{AccessToken: "tok", OwnerID: "owner-9"}, nil
	}

	require.NoError(t, f.session.Initialize(ctx, redirectURL("code-1", "state-1")))

	calls := f.transport.ExchangeCodeCalls()
	require.Len(t, calls, 1)
	assert.NoError(t, crypto.VerifyClientID("secret", calls[0].ClientID))
	assert.Equal(t, "secret", calls[0].ClientSecret)
	assert.Equal(t, "code-1", calls[0].Code)

	assert.Equal(t, "tok", f.session.Token())
	assert.Equal(t, "owner-9", f.session.OwnerID())

	stored, err := f.persistent.Get(ctx, storage.CredentialToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", stored)
	stored, err = f.persistent.Get(ctx, storage.CredentialOwnerID)
	require.NoError(t, err)
	assert.Equal(t, "owner-9", stored)

	// Временные значения стерты
	for _, name := range []string{storage.CredentialClientSecret, storage.CredentialClientID, storage.CredentialState} {
		_, err := f.transient.Get(ctx, name)
		assert.ErrorIs(t, err, storage.ErrCredentialNotFound, name)
	}
}

func TestSession_Initialize_NoCodeStaysAnonymous(t *testing.T) {
	f := newSessionFixture(t)

	require.NoError(t, f.session.Initialize(context.Background(), &url.URL{Path: "/"}))
	assert.False(t, f.session.LoggedIn())
	assert.Empty(t, f.transport.ExchangeCodeCalls())
}

func TestSession_HandleRedirect_StateMismatch(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	f.prepareLogin(t, "expected-state")

	err := f.session.Initialize(ctx, redirectURL("code-1", "forged-state"))
	assert.ErrorIs(t, err, errs.ErrStateMismatch)

	// Token endpoint не вызывался
	assert.Empty(t, f.transport.ExchangeCodeCalls())
	assert.False(t, f.session.LoggedIn())
	assert.NoError(t, f.session.WaitReady(ctx))

	// Сохраненный state стерт, повторить редирект нельзя
	_, err = f.transient.Get(ctx, storage.CredentialState)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)
}

func TestSession_HandleRedirect_InconsistentClientID(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	f.prepareLogin(t, "state-1")
	require.NoError(t, f.transient.Set(ctx, storage.CredentialClientID, "not-derived-from-secret"))

	err := f.session.HandleRedirect(ctx, redirectURL("code-1", "state-1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client id does not match secret")
	assert.Empty(t, f.transport.ExchangeCodeCalls())
}

func TestSession_HandleRedirect_NoStoredState(t *testing.T) {
	f := newSessionFixture(t)

	err := f.session.HandleRedirect(context.Background(), redirectURL("code-1", "any"))
	assert.ErrorIs(t, err, errs.ErrStateMismatch)
	assert.Empty(t, f.transport.ExchangeCodeCalls())
}

func TestSession_HandleRedirect_ExchangeErrors(t *testing.T) {
	tests := []struct {
		resp    *api.TokenResponse
		respErr error
		check   func(t *testing.T, err error)
		name    string
	}{
		{
			name:    "token endpoint failure",
			respErr: &errs.AuthExchangeError{Status: http.StatusBadRequest, Detail: "invalid code"},
			check: func(t *testing.T, err error) {
				var exErr *errs.AuthExchangeError
				require.ErrorAs(t, err, &exErr)
				assert.Equal(t, "invalid code", exErr.Detail)
			},
		},
		{
			name: "missing token",
			resp: &api.TokenResponse{OwnerID: "owner"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errs.ErrMalformedToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			f.prepareLogin(t, "st")
			f.transport.ExchangeCodeFunc = func(ctx context.Context, clientID, clientSecret, code string) (*api.TokenResponse, error) {
				return tt.resp, tt.respErr
			}

			err := f.session.HandleRedirect(context.Background(), redirectURL("code", "st"))
			tt.check(t, err)
			assert.False(t, f.session.LoggedIn())

			_, getErr := f.persistent.Get(context.Background(), storage.CredentialToken)
			assert.ErrorIs(t, getErr, storage.ErrCredentialNotFound)
		})
	}
}

func TestSession_HandleRedirect_OwnerFallback(t *testing.T) {
	jwtToken := signedToken(t, jwt.MapClaims{"sub": "owner-from-sub"})

	tests := []struct {
		name  string
		resp  api.TokenResponse
		owner string
	}{
		{name: "owner_id", resp: api.TokenResponse{AccessToken: jwtToken, OwnerID: "owner-a", Signature: "owner-b"}, owner: "owner-a"},
		{name: "legacy signature", resp: api.TokenResponse{AccessToken: jwtToken, Signature: "owner-b"}, owner: "owner-b"},
		{name: "jwt subject", resp: api.TokenResponse{AccessToken: jwtToken}, owner: "owner-from-sub"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			f.prepareLogin(t, "st")
			f.transport.ExchangeCodeFunc = func(ctx context.Context, clientID, clientSecret, code string) (*api.TokenResponse, error) {
				resp := tt.resp
				return &resp, nil
			}

			require.NoError(t, f.session.HandleRedirect(context.Background(), redirectURL("code", "st")))
			assert.Equal(t, tt.owner, f.session.OwnerID())
		})
	}
}

func TestSession_LogIn(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	require.NoError(t, f.session.Initialize(ctx, nil))

	require.NoError(t, f.session.LogIn(ctx))

	secret, err := f.transient.Get(ctx, storage.CredentialClientSecret)
	require.NoError(t, err)
	clientID, err := f.transient.Get(ctx, storage.CredentialClientID)
	require.NoError(t, err)
	state, err := f.transient.Get(ctx, storage.CredentialState)
	require.NoError(t, err)

	assert.NoError(t, crypto.VerifyClientID(secret, clientID))
	assert.NotEqual(t, secret, state)

	navCalls := f.navigator.NavigateCalls()
	require.Len(t, navCalls, 1)
	u, err := url.Parse(navCalls[0].AuthURL)
	require.NoError(t, err)
	assert.Equal(t, clientID, u.Query().Get(api.ParamClientID))
	assert.Equal(t, state, u.Query().Get(api.ParamState))
	assert.Equal(t, "http://127.0.0.1:8765/callback", u.Query().Get(api.ParamRedirectURI))

	// Секрет не уходит на страницу авторизации
	assert.NotContains(t, navCalls[0].AuthURL, secret)
}

func TestSession_LogIn_AlreadyAuthenticated(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	require.NoError(t, f.persistent.Set(ctx, storage.CredentialToken, "tok"))
	require.NoError(t, f.session.Initialize(ctx, nil))

	require.NoError(t, f.session.LogIn(ctx))
	assert.Empty(t, f.navigator.NavigateCalls())
}

func TestSession_LogIn_NavigateError(t *testing.T) {
	f := newSessionFixture(t)
	f.navigator.NavigateFunc = func(ctx context.Context, authURL string) error {
		return errors.New("no browser")
	}

	err := f.session.LogIn(context.Background())
	assert.ErrorContains(t, err, "no browser")
}

func TestSession_Request(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)

	// До Initialize запросы запрещены
	err := f.session.Request(ctx, http.MethodPost, api.PathUpdate, nil, nil)
	assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	assert.Empty(t, f.transport.DoCalls())

	require.NoError(t, f.persistent.Set(ctx, storage.CredentialToken, "tok"))
	require.NoError(t, f.session.Initialize(ctx, nil))

	body := api.DeleteRequest{ObjectID: "x"}
	require.NoError(t, f.session.Request(ctx, http.MethodPost, api.PathDelete, body, nil))

	calls := f.transport.DoCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "tok", calls[0].Token)
	assert.Equal(t, api.PathDelete, calls[0].Path)
	assert.Equal(t, body, calls[0].Body)
}

func TestSession_Request_PropagatesError(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	require.NoError(t, f.session.Initialize(ctx, nil))

	f.transport.DoFunc = func(ctx context.Context, method, path, token string, body, result any) error {
		return &errs.RequestError{Status: http.StatusBadRequest, Detail: "bad"}
	}

	err := f.session.Request(ctx, http.MethodPost, api.PathUpdate, nil, nil)
	var reqErr *errs.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)

	// Без токена заголовок не ставится
	assert.Empty(t, f.transport.DoCalls()[0].Token)
}

func TestSession_LogOut(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	require.NoError(t, f.persistent.Set(ctx, storage.CredentialToken, "tok"))
	require.NoError(t, f.persistent.Set(ctx, storage.CredentialOwnerID, "owner"))
	require.NoError(t, f.session.Initialize(ctx, nil))
	require.True(t, f.session.LoggedIn())

	require.NoError(t, f.session.LogOut(ctx))

	assert.False(t, f.session.LoggedIn())
	assert.Empty(t, f.session.OwnerID())
	_, err := f.persistent.Get(ctx, storage.CredentialToken)
	assert.ErrorIs(t, err, storage.ErrCredentialNotFound)
}

func TestSession_WaitReady_ContextCanceled(t *testing.T) {
	f := newSessionFixture(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, f.session.WaitReady(ctx), context.DeadlineExceeded)
}
