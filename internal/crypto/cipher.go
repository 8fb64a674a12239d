package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
)

// NonceSize - размер nonce для AES-GCM (12 bytes стандартный размер)
const NonceSize = 12

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != Argon2KeyLen {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", Argon2KeyLen, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

// Seal шифрует строку AES-256-GCM и возвращает Base64(nonce + ciphertext + tag).
// Пустая строка допустима: результат все равно аутентифицирован.
func Seal(plaintext string, key []byte) (string, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce, err := RandomBytes(NonceSize)
	if err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal дописывает ciphertext и tag к nonce
	sealed := aesGCM.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open расшифровывает результат Seal
func Open(sealed string, key []byte) (string, error) {
	data, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}
	if len(data) < NonceSize {
		return "", fmt.Errorf("encrypted data too short")
	}

	aesGCM, err := newGCM(key)
	if err != nil {
		return "", err
	}

	plaintext, err := aesGCM.Open(nil, data[:NonceSize], data[NonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: authentication failed or corrupted data: %w", err)
	}

	return string(plaintext), nil
}
