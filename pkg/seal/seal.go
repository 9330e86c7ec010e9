package seal

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

var endian = binary.BigEndian

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with a key derived from pass, and prefixes the result with everything Open needs except the passphrase.
func Seal(p *Params, pass, plaintext []byte) ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	salt := make([]byte, p.keySize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := p.deriveKey(pass, salt)
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := p.mapper().Write(&buf, endian); err != nil {
		return nil, err
	}
	buf.Write(salt)
	buf.Write(gcm.Seal(nonce, nonce, plaintext, nil))
	return buf.Bytes(), nil
}

// Open reverses Seal. A wrong passphrase or tampered data results in an error.
func Open(pass, data []byte) ([]byte, error) {
	if len(pass) == 0 {
		return nil, ErrEmptyPassphrase
	}
	var (
		p Params
		r = bytes.NewReader(data)
	)
	if err := p.mapper().Read(r, endian); err != nil {
		return nil, fmt.Errorf("%w: truncated header: %v", ErrInvalidData, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	salt := make([]byte, p.keySize)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, fmt.Errorf("%w: truncated salt", ErrInvalidData)
	}
	key, err := p.deriveKey(pass, salt)
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	rest := data[len(data)-r.Len():]
	if len(rest) < gcm.NonceSize()+gcm.Overhead() {
		return nil, fmt.Errorf("%w: payload is too short", ErrInvalidData)
	}
	nonce, cipherText := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return plaintext, nil
}
