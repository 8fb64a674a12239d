// Package auth управляет сессией клиента: обмен кода авторизации на токен,
// хранение токена между запусками и аутентифицированные запросы.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/livequery/internal/client/errs"
	"github.com/iudanet/livequery/internal/client/storage"
	"github.com/iudanet/livequery/internal/crypto"
	"github.com/iudanet/livequery/pkg/api"
)

// Session хранит bearer token и идентификатор владельца.
//
// persistent переживает перезапуск процесса (токен, owner id),
// transient живет только на время редиректа авторизации (secret, client id, state).
type Session struct {
	transport  Transport
	persistent storage.CredentialStore
	transient  storage.CredentialStore
	navigator  Navigator
	logger     *slog.Logger
	now        func() time.Time
	ready      chan struct{}
	expiry     time.Time
	token      string
	ownerID    string
	readyOnce  sync.Once
	mu         sync.RWMutex
}

// NewSession создает сессию. До Initialize сессия не готова, и Request
// возвращает errs.ErrNotAuthenticated.
func NewSession(
	transport Transport,
	persistent storage.CredentialStore,
	transient storage.CredentialStore,
	navigator Navigator,
	logger *slog.Logger,
) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		transport:  transport,
		persistent: persistent,
		transient:  transient,
		navigator:  navigator,
		logger:     logger,
		now:        time.Now,
		ready:      make(chan struct{}),
	}
}

// Initialize восстанавливает токен из постоянного хранилища. Если токена нет,
// а location несет code и state, выполняет обмен кода на токен.
// После возврата сессия готова, даже если восстановление завершилось ошибкой.
func (s *Session) Initialize(ctx context.Context, location *url.URL) error {
	defer s.markReady()

	restored, err := s.restore(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if restored {
		return nil
	}

	if location != nil {
		q := location.Query()
		if q.Get(api.ParamCode) != "" && q.Get(api.ParamState) != "" {
			return s.HandleRedirect(ctx, location)
		}
	}

	return nil
}

// restore читает токен и owner id; просроченный токен удаляется
func (s *Session) restore(ctx context.Context) (bool, error) {
	token, err := s.persistent.Get(ctx, storage.CredentialToken)
	if errors.Is(err, storage.ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	ownerID, err := s.persistent.Get(ctx, storage.CredentialOwnerID)
	if err != nil && !errors.Is(err, storage.ErrCredentialNotFound) {
		return false, err
	}

	claims := parseClaims(token)
	if !claims.expiry.IsZero() && !s.now().Before(claims.expiry) {
		s.logger.Info("stored token has expired, discarding", "expired_at", claims.expiry)
		if err := s.clearPersistent(ctx); err != nil {
			return false, err
		}
		return false, nil
	}

	if ownerID == "" {
		ownerID = claims.subject
	}

	s.mu.Lock()
	s.token = token
	s.ownerID = ownerID
	s.expiry = claims.expiry
	s.mu.Unlock()

	s.logger.Debug("session restored", "owner_id", ownerID)
	return true, nil
}

// LogIn начинает вход: генерирует client secret и state, сохраняет их
// во временном хранилище и открывает страницу авторизации.
// Для уже аутентифицированной сессии ничего не делает.
func (s *Session) LogIn(ctx context.Context) error {
	if s.LoggedIn() {
		return nil
	}

	secret, err := crypto.RandomString()
	if err != nil {
		return fmt.Errorf("failed to generate client secret: %w", err)
	}
	clientID, err := crypto.ClientIDFromSecret(secret)
	if err != nil {
		return fmt.Errorf("failed to derive client id: %w", err)
	}
	state, err := crypto.RandomString()
	if err != nil {
		return fmt.Errorf("failed to generate state: %w", err)
	}

	for name, value := range map[string]string{
		storage.CredentialClientSecret: secret,
		storage.CredentialClientID:     clientID,
		storage.CredentialState:        state,
	} {
		if err := s.transient.Set(ctx, name, value); err != nil {
			return fmt.Errorf("failed to save %s: %w", name, err)
		}
	}

	authURL := s.transport.AuthURL(clientID, s.navigator.RedirectURI(), state)
	s.logger.Debug("navigating to authorization page", "client_id", clientID)

	if err := s.navigator.Navigate(ctx, authURL); err != nil {
		return fmt.Errorf("failed to open authorization page: %w", err)
	}
	return nil
}

// HandleRedirect завершает вход по адресу возврата со страницы авторизации.
// Сохраненные secret, client id и state стираются в любом случае;
// при несовпадении state token endpoint не вызывается.
func (s *Session) HandleRedirect(ctx context.Context, location *url.URL) error {
	q := location.Query()
	code := q.Get(api.ParamCode)
	state := q.Get(api.ParamState)

	secret, err := s.take(ctx, storage.CredentialClientSecret)
	if err != nil {
		return err
	}
	clientID, err := s.take(ctx, storage.CredentialClientID)
	if err != nil {
		return err
	}
	storedState, err := s.take(ctx, storage.CredentialState)
	if err != nil {
		return err
	}

	if storedState == "" || storedState != state {
		s.logger.Warn("authorization state mismatch, ignoring redirect")
		return errs.ErrStateMismatch
	}
	if code == "" {
		return fmt.Errorf("authorization redirect carries no code")
	}
	if err := crypto.VerifyClientID(secret, clientID); err != nil {
		return fmt.Errorf("stored client credentials are inconsistent: %w", err)
	}

	resp, err := s.transport.ExchangeCode(ctx, clientID, secret, code)
	if err != nil {
		return err
	}
	if resp == nil || resp.AccessToken == "" {
		return errs.ErrMalformedToken
	}

	claims := parseClaims(resp.AccessToken)
	ownerID := resp.Owner()
	if ownerID == "" {
		ownerID = claims.subject
	}

	if err := s.persistent.Set(ctx, storage.CredentialToken, resp.AccessToken); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	if err := s.persistent.Set(ctx, storage.CredentialOwnerID, ownerID); err != nil {
		return fmt.Errorf("failed to save owner id: %w", err)
	}

	s.mu.Lock()
	s.token = resp.AccessToken
	s.ownerID = ownerID
	s.expiry = claims.expiry
	s.mu.Unlock()

	s.logger.Info("logged in", "owner_id", ownerID)
	return nil
}

// take читает значение из временного хранилища и сразу его удаляет
func (s *Session) take(ctx context.Context, name string) (string, error) {
	value, err := s.transient.Get(ctx, name)
	if err != nil && !errors.Is(err, storage.ErrCredentialNotFound) {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := s.transient.Delete(ctx, name); err != nil {
		return "", fmt.Errorf("failed to erase %s: %w", name, err)
	}
	return value, nil
}

// Request выполняет аутентифицированный запрос к REST глаголу.
// До готовности сессии возвращает errs.ErrNotAuthenticated.
func (s *Session) Request(ctx context.Context, method, path string, body, result any) error {
	select {
	case <-s.ready:
	default:
		return errs.ErrNotAuthenticated
	}

	return s.transport.Do(ctx, method, path, s.Token(), body, result)
}

// LogOut удаляет токен и owner id. Push-канал не закрывается.
func (s *Session) LogOut(ctx context.Context) error {
	if err := s.clearPersistent(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.ownerID = ""
	s.expiry = time.Time{}
	s.mu.Unlock()

	s.logger.Info("logged out")
	return nil
}

func (s *Session) clearPersistent(ctx context.Context) error {
	if err := s.persistent.Delete(ctx, storage.CredentialToken); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	if err := s.persistent.Delete(ctx, storage.CredentialOwnerID); err != nil {
		return fmt.Errorf("failed to delete owner id: %w", err)
	}
	return nil
}

func (s *Session) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

// Ready возвращает канал, закрывающийся после Initialize
func (s *Session) Ready() <-chan struct{} {
	return s.ready
}

// WaitReady ждет готовности сессии или отмены контекста
func (s *Session) WaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LoggedIn сообщает, есть ли у сессии токен
func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// Token возвращает bearer token или пустую строку
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// OwnerID возвращает идентификатор владельца сессии
func (s *Session) OwnerID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ownerID
}

// Expiry возвращает срок действия токена; нулевое время, если он неизвестен
func (s *Session) Expiry() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiry
}

type tokenClaims struct {
	expiry  time.Time
	subject string
}

// parseClaims читает exp и sub из JWT без проверки подписи.
// Подпись проверяет сервер; непрозрачный токен дает пустые claims.
func parseClaims(token string) tokenClaims {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return tokenClaims{}
	}

	var out tokenClaims
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.expiry = exp.Time
	}
	if sub, err := claims.GetSubject(); err == nil {
		out.subject = sub
	}
	return out
}
