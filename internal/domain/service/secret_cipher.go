package service

// SecretCipher encrypts account credential secrets at rest.
// Encryption is reversible so authorized callers can reveal the secret.
type SecretCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}
