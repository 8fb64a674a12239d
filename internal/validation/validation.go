package validation

import (
	"fmt"
	"regexp"
)

// ObjectIDPattern определяет формат id объекта: hex SHA-256 (64 символа)
var ObjectIDPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// QueryIDPattern определяет допустимый формат id live-запроса
// Латинские буквы, цифры, дефис и нижнее подчеркивание, 1-64 символа
var QueryIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

const (
	// MinPassphraseLen минимальная длина passphrase хранилища
	MinPassphraseLen = 12
)

// ValidateObjectID проверяет, что id объекта является hex SHA-256
func ValidateObjectID(id string) error {
	if id == "" {
		return fmt.Errorf("object id cannot be empty")
	}

	if !ObjectIDPattern.MatchString(id) {
		return fmt.Errorf("object id must be 64 lowercase hex characters")
	}

	return nil
}

// ValidateQueryID проверяет формат id live-запроса
func ValidateQueryID(id string) error {
	if id == "" {
		return fmt.Errorf("query id cannot be empty")
	}

	if !QueryIDPattern.MatchString(id) {
		return fmt.Errorf("query id can only contain letters, numbers, '-' and '_' (up to 64 characters)")
	}

	return nil
}

// ValidatePassphrase проверяет минимальные требования к passphrase хранилища учетных данных
// Минимум 12 символов
func ValidatePassphrase(passphrase string) error {
	if passphrase == "" {
		return fmt.Errorf("passphrase cannot be empty")
	}

	if len(passphrase) < MinPassphraseLen {
		return fmt.Errorf("passphrase must be at least %d characters long", MinPassphraseLen)
	}

	return nil
}
