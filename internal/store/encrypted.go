package store

import (
	"context"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// EncryptedStore wraps another Store and encrypts record values with
// ChaCha20-Poly1305. The nonce is prepended to each stored value.
type EncryptedStore struct {
	inner Store
	key   []byte
}

// NewEncryptedStore creates an encrypting wrapper. The key must be
// exactly chacha20poly1305.KeySize (32) bytes.
func NewEncryptedStore(inner Store, key []byte) (*EncryptedStore, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &EncryptedStore{inner: inner, key: k}, nil
}

func (e *EncryptedStore) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := e.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if sealed == nil {
		return nil, nil
	}

	aead, err := chacha20poly1305.NewX(e.key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	if len(sealed) < aead.NonceSize() {
		return nil, fmt.Errorf("stored value too short to contain nonce")
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt record %q: %w", key, err)
	}
	return plaintext, nil
}

func (e *EncryptedStore) Set(ctx context.Context, key string, value []byte) error {
	aead, err := chacha20poly1305.NewX(e.key)
	if err != nil {
		return fmt.Errorf("failed to initialize cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(value)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	// The record key is bound as additional data so a value moved to a
	// different key fails authentication.
	sealed := aead.Seal(nonce, nonce, value, []byte(key))
	return e.inner.Set(ctx, key, sealed)
}

func (e *EncryptedStore) Remove(ctx context.Context, key string) error {
	return e.inner.Remove(ctx, key)
}
