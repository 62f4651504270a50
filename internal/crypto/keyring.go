// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
)

// Keyring holds the unwrapped vault key for the lifetime of a client session.
//
// The key lives in a memguard locked buffer: it is kept out of swap, guarded
// by canary pages and made read-only after [Keyring.Unlock]. Callers never
// see the buffer itself; they borrow the item key pair through
// [Keyring.WithItemKeys]. [Keyring.Clear] zeroes and releases the buffer.
//
// A Keyring is safe for concurrent use. Unlocking twice replaces the held
// key.
type Keyring struct {
	mu  sync.RWMutex
	buf *memguard.LockedBuffer
}

// NewKeyring returns a locked (empty) keyring.
func NewKeyring() *Keyring {
	return &Keyring{}
}

// Unlock moves vaultKey into protected memory. The source slice is wiped.
func (k *Keyring) Unlock(vaultKey []byte) error {
	if len(vaultKey) != VaultKeySize {
		memguard.WipeBytes(vaultKey)
		return fmt.Errorf("%w: vault key must be %d bytes, got %d", ErrInvalidKeyLength, VaultKeySize, len(vaultKey))
	}

	buf := memguard.NewBufferFromBytes(vaultKey)
	buf.Freeze()

	k.mu.Lock()
	defer k.mu.Unlock()

	if k.buf != nil {
		k.buf.Destroy()
	}
	k.buf = buf

	return nil
}

// IsUnlocked reports whether a vault key is held.
func (k *Keyring) IsUnlocked() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()

	return k.buf != nil && k.buf.IsAlive()
}

// WithItemKeys calls fn with the item key pair split from the held vault key.
// The pair aliases protected memory and must not be retained after fn
// returns. Returns [ErrVaultLocked] if no key is held.
func (k *Keyring) WithItemKeys(fn func(KeyPair) error) error {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.buf == nil || !k.buf.IsAlive() {
		return ErrVaultLocked
	}

	keys, err := SplitVaultKey(k.buf.Bytes())
	if err != nil {
		return err
	}

	return fn(keys)
}

// Clear zeroes the held vault key and returns the keyring to the locked state.
func (k *Keyring) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.buf != nil {
		k.buf.Destroy()
		k.buf = nil
	}
}
