// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

const envelopeSeparator = "|"

// segmentEncoding rejects non-zero trailing bits, so every envelope has a
// single accepted text form.
var segmentEncoding = base64.StdEncoding.Strict()

// Envelope is the decoded form of an encrypt-then-MAC ciphertext:
// AES-256-CBC with PKCS#7 padding, authenticated by HMAC-SHA512 over
// IV ‖ Ciphertext.
//
// Its text form is base64(IV)|base64(Ciphertext)|base64(MAC) using standard
// padded base64.
type Envelope struct {
	IV         []byte
	Ciphertext []byte
	MAC        []byte
}

// ParseEnvelope decodes the text form. It checks the segment count, the
// base64 of each segment and the IV size; it does not verify the MAC.
func ParseEnvelope(encoded string) (Envelope, error) {
	parts := strings.Split(encoded, envelopeSeparator)
	if len(parts) != 3 {
		return Envelope{}, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedEnvelope, len(parts))
	}

	decoded := make([][]byte, len(parts))
	for i, part := range parts {
		b, err := segmentEncoding.DecodeString(part)
		if err != nil {
			return Envelope{}, fmt.Errorf("%w: segment %d: %w", ErrMalformedEnvelope, i, err)
		}
		decoded[i] = b
	}

	if len(decoded[0]) != IVSize {
		return Envelope{}, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrMalformedEnvelope, IVSize, len(decoded[0]))
	}

	return Envelope{IV: decoded[0], Ciphertext: decoded[1], MAC: decoded[2]}, nil
}

// String encodes the envelope in its text form.
func (e Envelope) String() string {
	return strings.Join([]string{
		segmentEncoding.EncodeToString(e.IV),
		segmentEncoding.EncodeToString(e.Ciphertext),
		segmentEncoding.EncodeToString(e.MAC),
	}, envelopeSeparator)
}

// ValidateEnvelope performs the structural checks a party without keys can
// make: three segments, a 16-byte IV, a 64-byte MAC and a non-empty
// ciphertext made of whole AES blocks.
func ValidateEnvelope(encoded string) error {
	env, err := ParseEnvelope(encoded)
	if err != nil {
		return err
	}
	if len(env.MAC) != MACSize {
		return fmt.Errorf("%w: mac must be %d bytes, got %d", ErrMalformedEnvelope, MACSize, len(env.MAC))
	}
	if len(env.Ciphertext) == 0 || len(env.Ciphertext)%aes.BlockSize != 0 {
		return fmt.Errorf("%w: ciphertext is not block aligned", ErrMalformedEnvelope)
	}
	return nil
}

// Seal encrypts plaintext under key with a fresh random IV and returns the
// envelope text.
func Seal(key KeyPair, plaintext []byte) (string, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}
	return SealWithIV(key, plaintext, iv)
}

// SealWithIV is [Seal] with a caller-supplied IV. Reusing an IV under the
// same key leaks plaintext equality; outside of tests use [Seal].
func SealWithIV(key KeyPair, plaintext, iv []byte) (string, error) {
	if !key.valid() {
		return "", fmt.Errorf("%w: envelope key pair", ErrInvalidKeyLength)
	}
	if len(iv) != IVSize {
		return "", fmt.Errorf("%w: iv must be %d bytes", ErrInvalidKeyLength, IVSize)
	}

	block, err := aes.NewCipher(key.EncryptionKey)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	env := Envelope{
		IV:         bytes.Clone(iv),
		Ciphertext: ciphertext,
		MAC:        computeMAC(key.AuthenticationKey, iv, ciphertext),
	}
	return env.String(), nil
}

// Open verifies and decrypts an envelope.
//
// A structurally invalid envelope yields [ErrMalformedEnvelope]. A MAC
// mismatch yields [ErrIntegrity] and nothing is decrypted. A MAC-valid
// ciphertext with broken padding yields [ErrMalformedEnvelope].
func Open(key KeyPair, encoded string) ([]byte, error) {
	if !key.valid() {
		return nil, fmt.Errorf("%w: envelope key pair", ErrInvalidKeyLength)
	}

	env, err := ParseEnvelope(encoded)
	if err != nil {
		return nil, err
	}

	expected := computeMAC(key.AuthenticationKey, env.IV, env.Ciphertext)
	if !hmac.Equal(expected, env.MAC) {
		return nil, ErrIntegrity
	}

	if len(env.Ciphertext) == 0 || len(env.Ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not block aligned", ErrMalformedEnvelope)
	}

	block, err := aes.NewCipher(key.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext := make([]byte, len(env.Ciphertext))
	cipher.NewCBCDecrypter(block, env.IV).CryptBlocks(plaintext, env.Ciphertext)

	return pkcs7Unpad(plaintext, aes.BlockSize)
}

func computeMAC(authKey, iv, ciphertext []byte) []byte {
	mac := hmac.New(sha512.New, authKey)
	mac.Write(iv)
	mac.Write(ciphertext)
	return mac.Sum(nil)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data), len(data)+n)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: bad padding", ErrMalformedEnvelope)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: bad padding", ErrMalformedEnvelope)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrMalformedEnvelope)
		}
	}
	return data[:len(data)-n], nil
}
