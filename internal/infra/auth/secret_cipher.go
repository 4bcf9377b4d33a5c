package auth

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"

	"tracker/config"
	"tracker/internal/domain/service"
)

// secretCipher seals account credential secrets with XChaCha20-Poly1305.
// The stored form is base64(nonce || ciphertext || tag).
type secretCipher struct {
	key []byte
}

// NewSecretCipher builds the cipher from the base64 key in accounts.secretKey.
func NewSecretCipher(cfg *config.Config) (service.SecretCipher, error) {
	if cfg == nil || cfg.Accounts == nil {
		return nil, errors.New("accounts configuration is required")
	}

	key, err := cfg.Accounts.DecodeSecretKey()
	if err != nil {
		return nil, err
	}

	return newSecretCipher(key)
}

func newSecretCipher(key []byte) (*secretCipher, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, errors.Errorf("secret key must be %d bytes", chacha20poly1305.KeySize)
	}

	return &secretCipher{key: key}, nil
}

// Encrypt seals plaintext under a fresh random nonce.
func (c *secretCipher) Encrypt(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to init cipher")
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt.
func (c *secretCipher) Decrypt(ciphertext string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to init cipher")
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "ciphertext is not base64")
	}
	if len(raw) < aead.NonceSize()+aead.Overhead() {
		return "", errors.New("ciphertext too short")
	}

	nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to decrypt secret")
	}

	return string(plaintext), nil
}
