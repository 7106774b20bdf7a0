package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"os"
)

// Field-level cipher for sensitive payee data (account number, IBAN). Values
// are encrypted with AES-256-GCM before they are persisted and decrypted when
// read back. The key is derived from the ENCRYPTION_KEY environment variable.

var ErrInvalidCiphertext = errors.New("invalid ciphertext")

func encryptionKey() ([]byte, error) {
	secret := os.Getenv("ENCRYPTION_KEY")
	if secret == "" {
		return nil, errors.New("ENCRYPTION_KEY is not set")
	}
	sum := sha256.Sum256([]byte(secret))
	return sum[:], nil
}

func newGCM() (cipher.AEAD, error) {
	key, err := encryptionKey()
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// EncryptField encrypts a plaintext field value and returns a base64 string
// containing the nonce followed by the sealed data.
func EncryptField(plaintext string) (string, error) {
	gcm, err := newGCM()
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptField reverses EncryptField. Malformed or tampered ciphertext yields
// ErrInvalidCiphertext rather than garbage plaintext.
func DecryptField(ciphertext string) (string, error) {
	gcm, err := newGCM()
	if err != nil {
		return "", err
	}
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	if len(raw) < gcm.NonceSize() {
		return "", ErrInvalidCiphertext
	}
	nonce, sealed := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	return string(plaintext), nil
}

// EncryptOptionalField encrypts an optional field, passing nil through as nil.
func EncryptOptionalField(plaintext *string) (*string, error) {
	if plaintext == nil {
		return nil, nil
	}
	enc, err := EncryptField(*plaintext)
	if err != nil {
		return nil, err
	}
	return &enc, nil
}

// DecryptOptionalField decrypts an optional field, passing nil through as nil.
func DecryptOptionalField(ciphertext *string) (*string, error) {
	if ciphertext == nil {
		return nil, nil
	}
	dec, err := DecryptField(*ciphertext)
	if err != nil {
		return nil, err
	}
	return &dec, nil
}
