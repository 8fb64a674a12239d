package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"

	"github.com/iudanet/livequery/internal/client/iocli"
	"github.com/iudanet/livequery/pkg/api"
)

// CallbackPath путь, на который страница авторизации возвращает пользователя
const CallbackPath = "/callback"

// Loopback принимает возврат со страницы авторизации на локальном адресе.
// Реализует auth.Navigator и Redirector.
type Loopback struct {
	io        iocli.IO
	logger    *slog.Logger
	listener  net.Listener
	server    *http.Server
	redirects chan *url.URL
	addr      string
	mu        sync.Mutex
}

// NewLoopback создает слушатель на addr; порт 0 выбирается системой
func NewLoopback(addr string, io iocli.IO, logger *slog.Logger) *Loopback {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loopback{
		io:        io,
		logger:    logger,
		addr:      addr,
		redirects: make(chan *url.URL, 1),
	}
}

// Start начинает слушать
func (l *Loopback) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listener != nil {
		return nil
	}

	ln, err := net.Listen("tcp", l.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", l.addr, err)
	}

	r := mux.NewRouter()
	r.Use(l.logRequests)
	r.Methods(http.MethodGet).Path(CallbackPath).HandlerFunc(l.handleCallback)

	l.listener = ln
	l.server = &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := l.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.logger.Error("redirect listener failed", "error", err)
		}
	}()

	l.logger.Debug("redirect listener started", "addr", ln.Addr().String())
	return nil
}

// RedirectURI возвращает адрес возврата; до Start пустая строка
func (l *Loopback) RedirectURI() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listener == nil {
		return ""
	}
	return "http://" + l.listener.Addr().String() + CallbackPath
}

// Navigate показывает адрес страницы авторизации
func (l *Loopback) Navigate(_ context.Context, authURL string) error {
	l.io.Println("Open this address in a browser to log in:")
	l.io.Println()
	l.io.Println("  " + authURL)
	l.io.Println()
	return nil
}

// Wait ждет возврата со страницы авторизации
func (l *Loopback) Wait(ctx context.Context) (*url.URL, error) {
	select {
	case location := <-l.redirects:
		return location, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close останавливает слушатель
func (l *Loopback) Close() error {
	l.mu.Lock()
	server := l.server
	l.server = nil
	l.listener = nil
	l.mu.Unlock()

	if server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func (l *Loopback) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		l.logger.Debug("redirect listener handled", "method", r.Method, "path", r.URL.Path, "status", m.Code, "duration", m.Duration)
	})
}

func (l *Loopback) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get(api.ParamCode) == "" || q.Get(api.ParamState) == "" {
		http.Error(w, "missing code or state", http.StatusBadRequest)
		return
	}

	location := *r.URL
	location.Scheme = "http"
	location.Host = r.Host

	select {
	case l.redirects <- &location:
	default:
		// первый возврат уже принят
		http.Error(w, "login already completed", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Login complete. You can close this window.\n"))
}
