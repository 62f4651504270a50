// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/awnumar/memguard"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	accounts store.LocalAccountRepository
	keychain crypto.KeyChainService
	keyring  *crypto.Keyring

	logger *logger.Logger
}

func NewClientAuthService(
	serverAdapter adapter.ServerAdapter,
	accounts store.LocalAccountRepository,
	keychain crypto.KeyChainService,
	keyring *crypto.Keyring,
	logger *logger.Logger,
) ClientAuthService {
	return &clientAuthService{
		adapter:  serverAdapter,
		accounts: accounts,
		keychain: keychain,
		keyring:  keyring,
		logger:   logger,
	}
}

func (a *clientAuthService) SignUp(ctx context.Context, creds models.Credentials) error {
	if err := crypto.ValidateCredentials(creds.Email, creds.Password); err != nil {
		return err
	}
	email := crypto.NormalizeEmail(creds.Email)

	proof, stretched, err := a.deriveSessionKeys(ctx, email, creds.Password)
	if err != nil {
		return err
	}

	vaultKey, protected, err := a.keychain.ProtectNewVaultKey(stretched)
	stretched.Wipe()
	if err != nil {
		return fmt.Errorf("protecting vault key: %w", err)
	}
	defer memguard.WipeBytes(vaultKey)

	err = a.adapter.Register(ctx, models.User{
		Email:             email,
		Proof:             proof,
		ProtectedVaultKey: protected,
		ProtocolVersion:   crypto.ProtocolVersion,
	})
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.SignUp").Msg("registration failed")
		return mapAdapterError(err, ErrRegisterOnServer)
	}

	a.cacheAccount(ctx, email, protected, crypto.ProtocolVersion)

	return a.keyring.Unlock(vaultKey)
}

func (a *clientAuthService) SignIn(ctx context.Context, creds models.Credentials) error {
	if err := crypto.ValidateCredentials(creds.Email, creds.Password); err != nil {
		return err
	}
	email := crypto.NormalizeEmail(creds.Email)

	proof, stretched, err := a.deriveSessionKeys(ctx, email, creds.Password)
	if err != nil {
		return err
	}
	defer stretched.Wipe()

	resp, err := a.adapter.Login(ctx, models.User{Email: email, Proof: proof})
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.SignIn").Msg("login failed")
		return mapAdapterError(err, ErrLoginOnServer)
	}

	if err = a.unlockWith(stretched, resp.ProtectedVaultKey, resp.ProtocolVersion); err != nil {
		a.adapter.SetToken("")
		return err
	}

	a.cacheAccount(ctx, email, resp.ProtectedVaultKey, resp.ProtocolVersion)
	return nil
}

func (a *clientAuthService) Unlock(ctx context.Context, creds models.Credentials) error {
	if err := crypto.ValidateCredentials(creds.Email, creds.Password); err != nil {
		return err
	}
	email := crypto.NormalizeEmail(creds.Email)

	account, err := a.accounts.FindAccount(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrLocalAccountNotFound) {
			return ErrNoLocalAccount
		}
		return fmt.Errorf("reading cached account: %w", err)
	}

	_, stretched, err := a.deriveSessionKeys(ctx, email, creds.Password)
	if err != nil {
		return err
	}
	defer stretched.Wipe()

	return a.unlockWith(stretched, account.ProtectedVaultKey, account.ProtocolVersion)
}

func (a *clientAuthService) Lock() {
	a.keyring.Clear()
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.keyring.Clear()
	a.adapter.SetToken("")
	return nil
}

func (a *clientAuthService) IsUnlocked() bool {
	return a.keyring.IsUnlocked()
}

// unlockWith unwraps protected with the stretched pair and moves the vault
// key into the keyring.
func (a *clientAuthService) unlockWith(stretched crypto.KeyPair, protected string, version int) error {
	if err := crypto.CheckProtocolVersion(version); err != nil {
		return err
	}

	vaultKey, err := a.keychain.UnwrapVaultKey(stretched, protected)
	if err != nil {
		if errors.Is(err, crypto.ErrAuthenticationFailed) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("unwrapping vault key: %w", err)
	}

	return a.keyring.Unlock(vaultKey)
}

// cacheAccount remembers the protected vault key for offline unlock. A
// failure here does not fail the sign-in.
func (a *clientAuthService) cacheAccount(ctx context.Context, email, protected string, version int) {
	err := a.accounts.SaveAccount(ctx, models.LocalAccount{
		Email:             email,
		ProtectedVaultKey: protected,
		ProtocolVersion:   version,
		UpdatedAt:         time.Now(),
	})
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not cache account locally")
	}
}

type derivedKeys struct {
	proof     string
	stretched crypto.KeyPair
	err       error
}

// deriveSessionKeys runs the Argon2id work off the caller's goroutine. When
// ctx is cancelled first the caller returns at once; the derivation finishes
// in the background and its keys are wiped.
func (a *clientAuthService) deriveSessionKeys(ctx context.Context, email, password string) (string, crypto.KeyPair, error) {
	done := make(chan derivedKeys, 1)
	go func() {
		proof, stretched, err := a.keychain.DeriveSessionKeys(email, password)
		done <- derivedKeys{proof: proof, stretched: stretched, err: err}
	}()

	select {
	case <-ctx.Done():
		go func() {
			r := <-done
			r.stretched.Wipe()
		}()
		return "", crypto.KeyPair{}, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return "", crypto.KeyPair{}, fmt.Errorf("deriving keys: %w", r.err)
		}
		return r.proof, r.stretched, nil
	}
}
