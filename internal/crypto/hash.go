package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashHex возвращает hex-encoded SHA256 от данных
func HashHex(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ClientIDFromSecret вычисляет публичный client_id как SHA256 от client secret.
// Хеш служит обязательством: сервер сможет проверить, что обмен кода
// пришел из того же контекста, не видя секрет до финального шага.
func ClientIDFromSecret(secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("client secret cannot be empty")
	}
	return HashHex([]byte(secret)), nil
}

// VerifyClientID проверяет, что client_id соответствует секрету
func VerifyClientID(secret, clientID string) error {
	if clientID == "" {
		return fmt.Errorf("client id cannot be empty")
	}

	computed, err := ClientIDFromSecret(secret)
	if err != nil {
		return fmt.Errorf("failed to compute client id: %w", err)
	}

	if computed != clientID {
		return fmt.Errorf("client id does not match secret")
	}

	return nil
}

// DeriveObjectID вычисляет id объекта как SHA256(ownerID || nonce).
// id непредсказуем, но по nonce сервер может проверить авторство.
func DeriveObjectID(ownerID, nonce string) (string, error) {
	if ownerID == "" {
		return "", fmt.Errorf("owner id cannot be empty")
	}
	if nonce == "" {
		return "", fmt.Errorf("nonce cannot be empty")
	}
	return HashHex([]byte(ownerID + nonce)), nil
}
