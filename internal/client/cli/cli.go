// Package cli реализует команды клиента: вход, статус, просмотр и изменение объектов.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/iudanet/livequery/internal/client/auth"
	"github.com/iudanet/livequery/internal/client/config"
	"github.com/iudanet/livequery/internal/client/iocli"
	"github.com/iudanet/livequery/internal/client/storage"
	"github.com/iudanet/livequery/internal/validation"
)

//go:generate moq -out session_mock.go . Session
//go:generate moq -out redirector_mock.go . Redirector

// Session операции сессии, которые нужны командам. *auth.Session реализует его.
type Session interface {
	Token() string
	OwnerID() string
	Request(ctx context.Context, method, path string, body, result any) error
	LogIn(ctx context.Context) error
	HandleRedirect(ctx context.Context, location *url.URL) error
	LogOut(ctx context.Context) error
	LoggedIn() bool
	Expiry() time.Time
}

// Redirector принимает возврат со страницы авторизации. *Loopback реализует его.
type Redirector interface {
	Start() error
	Wait(ctx context.Context) (*url.URL, error)
	Close() error
}

type Cli struct {
	io         iocli.IO
	session    Session
	redirector Redirector
	cfg        *config.Config
	logger     *slog.Logger
	sealed     bool
}

// New создает CLI. sealed сообщает, зашифровано ли хранилище учетных данных.
func New(cfg *config.Config, io iocli.IO, session Session, redirector Redirector, sealed bool, logger *slog.Logger) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:         io,
		session:    session,
		redirector: redirector,
		cfg:        cfg,
		logger:     logger,
		sealed:     sealed,
	}
}

// ResolvePassphrase определяет passphrase хранилища учетных данных по приоритету:
// 1. Переменная окружения LIVEQUERY_PASSPHRASE
// 2. Файл из --passphrase-file
// 3. Интерактивный ввод, если хранилище уже запечатано
// Пустая строка означает хранилище без шифрования.
func ResolvePassphrase(ctx context.Context, cfg *config.Config, io iocli.IO, inner storage.CredentialStore) (string, error) {
	sealed, err := auth.HasSealedValues(ctx, inner)
	if err != nil {
		return "", err
	}

	passphrase := cfg.Passphrase
	if passphrase == "" && cfg.PassphraseFile != "" {
		content, err := os.ReadFile(cfg.PassphraseFile)
		if err != nil {
			return "", fmt.Errorf("failed to read passphrase file: %w", err)
		}
		// Убираем trailing newline/whitespace
		passphrase = strings.TrimSpace(string(content))
		if passphrase == "" {
			return "", fmt.Errorf("passphrase file is empty")
		}
	}

	if passphrase == "" && sealed {
		passphrase, err = io.ReadPassword("Passphrase: ")
		if err != nil {
			return "", fmt.Errorf("failed to read passphrase: %w", err)
		}
		if passphrase == "" {
			return "", fmt.Errorf("passphrase cannot be empty")
		}
	}

	// Новый passphrase должен быть достаточно длинным; старый уже принят ранее
	if passphrase != "" && !sealed {
		if err := validation.ValidatePassphrase(passphrase); err != nil {
			return "", fmt.Errorf("invalid passphrase: %w", err)
		}
	}

	return passphrase, nil
}

// PrintUsage печатает справку
func PrintUsage(io iocli.IO) {
	io.Println("LiveQuery Client")
	io.Println()
	io.Println("Usage:")
	io.Println("  livequery [OPTIONS] COMMAND [ARGS]")
	io.Println()
	io.Println("Options:")
	io.Println("  --version                 Show version information")
	io.Println("  --server URL              Server URL (default: " + config.DefaultServerURL + ")")
	io.Println("  --socket URL              Push channel URL (default: derived from --server)")
	io.Println("  --db PATH                 Path to local credential database (default: " + config.DefaultDBPath + ")")
	io.Println("  --passphrase-file PATH    File containing the credential store passphrase")
	io.Println("  --callback ADDR           Loopback address for the login redirect")
	io.Println("  --log-level LEVEL         debug, info, warn or error")
	io.Println("  --confirm-timeout DUR     How long a write waits for confirmation (default: 5s)")
	io.Println()
	io.Println("Passphrase Priority (highest to lowest):")
	io.Println("  1. " + config.EnvPassphrase + " environment variable")
	io.Println("  2. --passphrase-file (file path)")
	io.Println("  3. Interactive prompt, once the store has been sealed")
	io.Println()
	io.Println("Commands:")
	io.Println("  login                     Log in through the authorization page")
	io.Println("  logout                    Forget the stored session")
	io.Println("  status                    Show authentication status")
	io.Println("  rewind <query> [limit]    Show the newest matches of a query")
	io.Println("  watch <query> [limit]     Show matches and follow changes until interrupted")
	io.Println("  put <object>              Create or replace an object")
	io.Println("  delete <id>               Delete an object")
	io.Println()
	io.Println("Queries and objects are JSON documents, for example:")
	io.Println(`  livequery rewind '{"topic":"a"}' 50`)
	io.Println(`  livequery watch '{"topic":"a"}'`)
	io.Println(`  livequery put '{"topic":"a","text":"hello"}'`)
}
