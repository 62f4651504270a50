// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/app"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/mock"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	clientEmail    = "alice@example.com"
	clientPassword = "correct_Horse_9"
	clientProof    = "cHJvb2Y="
)

var clientCreds = models.Credentials{Email: " Alice@Example.com", Password: clientPassword}

type clientAuthDeps struct {
	adapter  *mock.MockServerAdapter
	accounts *mock.MockLocalAccountRepository
	keychain *mock.MockKeyChainService
	keyring  *crypto.Keyring
	svc      ClientAuthService
}

func newClientAuthDeps(t *testing.T) *clientAuthDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &clientAuthDeps{
		adapter:  mock.NewMockServerAdapter(ctrl),
		accounts: mock.NewMockLocalAccountRepository(ctrl),
		keychain: mock.NewMockKeyChainService(ctrl),
		keyring:  crypto.NewKeyring(),
	}
	d.svc = NewClientAuthService(d.adapter, d.accounts, d.keychain, d.keyring, logger.Nop())
	t.Cleanup(d.keyring.Clear)

	return d
}

func stretchedPair(t *testing.T) crypto.KeyPair {
	t.Helper()
	pair, err := crypto.NewKeyPair(bytes.Repeat([]byte{0x01}, 32), bytes.Repeat([]byte{0x02}, 32))
	require.NoError(t, err)
	return pair
}

// ─────────────────────────────────────────────
// SignUp
// ─────────────────────────────────────────────

func TestClientAuth_SignUp_Success(t *testing.T) {
	d := newClientAuthDeps(t)
	ctx := context.Background()

	d.keychain.EXPECT().DeriveSessionKeys(clientEmail, clientPassword).Return(clientProof, stretchedPair(t), nil)
	d.keychain.EXPECT().ProtectNewVaultKey(gomock.Any()).Return(bytes.Repeat([]byte{0x09}, 64), "protected", nil)
	d.adapter.EXPECT().Register(ctx, models.User{
		Email:             clientEmail,
		Proof:             clientProof,
		ProtectedVaultKey: "protected",
		ProtocolVersion:   crypto.ProtocolVersion,
	}).Return(nil)
	d.accounts.EXPECT().SaveAccount(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, acc models.LocalAccount) error {
			assert.Equal(t, clientEmail, acc.Email)
			assert.Equal(t, "protected", acc.ProtectedVaultKey)
			return nil
		})

	require.NoError(t, d.svc.SignUp(ctx, clientCreds))
	assert.True(t, d.svc.IsUnlocked())
}

func TestClientAuth_SignUp_ShortPassword_NoServerCall(t *testing.T) {
	d := newClientAuthDeps(t)

	err := d.svc.SignUp(context.Background(), models.Credentials{Email: clientEmail, Password: "elevenchars"})

	assert.ErrorIs(t, err, crypto.ErrPasswordTooShort)
	assert.False(t, d.svc.IsUnlocked())
}

func TestClientAuth_SignUp_AccountExists(t *testing.T) {
	d := newClientAuthDeps(t)

	d.keychain.EXPECT().DeriveSessionKeys(clientEmail, clientPassword).Return(clientProof, stretchedPair(t), nil)
	d.keychain.EXPECT().ProtectNewVaultKey(gomock.Any()).Return(bytes.Repeat([]byte{0x09}, 64), "protected", nil)
	d.adapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgAccountExists))

	err := d.svc.SignUp(context.Background(), clientCreds)

	assert.ErrorIs(t, err, ErrAccountExists)
	assert.False(t, d.svc.IsUnlocked())
}

func TestClientAuth_SignUp_CacheFailureIsNotFatal(t *testing.T) {
	d := newClientAuthDeps(t)

	d.keychain.EXPECT().DeriveSessionKeys(clientEmail, clientPassword).Return(clientProof, stretchedPair(t), nil)
	d.keychain.EXPECT().ProtectNewVaultKey(gomock.Any()).Return(bytes.Repeat([]byte{0x09}, 64), "protected", nil)
	d.adapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)
	d.accounts.EXPECT().SaveAccount(gomock.Any(), gomock.Any()).Return(store.ErrExecutingQuery)

	require.NoError(t, d.svc.SignUp(context.Background(), clientCreds))
	assert.True(t, d.svc.IsUnlocked())
}

// ─────────────────────────────────────────────
// SignIn
// ─────────────────────────────────────────────

func TestClientAuth_SignIn_Success(t *testing.T) {
	d := newClientAuthDeps(t)

	d.keychain.EXPECT().DeriveSessionKeys(clientEmail, clientPassword).Return(clientProof, stretchedPair(t), nil)
	d.adapter.EXPECT().Login(gomock.Any(), models.User{Email: clientEmail, Proof: clientProof}).
		Return(models.AuthResponse{ProtectedVaultKey: "protected", ProtocolVersion: crypto.ProtocolVersion}, nil)
	d.keychain.EXPECT().UnwrapVaultKey(gomock.Any(), "protected").Return(bytes.Repeat([]byte{0x09}, 64), nil)
	d.accounts.EXPECT().SaveAccount(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, d.svc.SignIn(context.Background(), clientCreds))
	assert.True(t, d.svc.IsUnlocked())
}

func TestClientAuth_SignIn_RejectedByServer(t *testing.T) {
	d := newClientAuthDeps(t)

	d.keychain.EXPECT().DeriveSessionKeys(clientEmail, clientPassword).Return(clientProof, stretchedPair(t), nil)
	d.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials))

	err := d.svc.SignIn(context.Background(), clientCreds)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, d.svc.IsUnlocked())
}

func TestClientAuth_SignIn_UnwrapFails_DropsToken(t *testing.T) {
	d := newClientAuthDeps(t)

	d.keychain.EXPECT().DeriveSessionKeys(clientEmail, clientPassword).Return(clientProof, stretchedPair(t), nil)
	d.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{ProtectedVaultKey: "protected", ProtocolVersion: crypto.ProtocolVersion}, nil)
	d.keychain.EXPECT().UnwrapVaultKey(gomock.Any(), "protected").
		Return(nil, fmt.Errorf("%w: %w", crypto.ErrAuthenticationFailed, crypto.ErrIntegrity))
	d.adapter.EXPECT().SetToken("")

	err := d.svc.SignIn(context.Background(), clientCreds)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, d.svc.IsUnlocked())
}

func TestClientAuth_SignIn_UnsupportedProtocolVersion(t *testing.T) {
	d := newClientAuthDeps(t)

	d.keychain.EXPECT().DeriveSessionKeys(clientEmail, clientPassword).Return(clientProof, stretchedPair(t), nil)
	d.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{ProtectedVaultKey: "protected", ProtocolVersion: 99}, nil)
	d.adapter.EXPECT().SetToken("")

	err := d.svc.SignIn(context.Background(), clientCreds)

	assert.ErrorIs(t, err, crypto.ErrUnsupportedProtocolVersion)
}

func TestClientAuth_SignIn_ServerDown(t *testing.T) {
	d := newClientAuthDeps(t)

	d.keychain.EXPECT().DeriveSessionKeys(clientEmail, clientPassword).Return(clientProof, stretchedPair(t), nil)
	d.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: dial tcp: refused", adapter.ErrUnreachable))

	err := d.svc.SignIn(context.Background(), clientCreds)

	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestClientAuth_SignIn_CancelledDuringDerivation(t *testing.T) {
	d := newClientAuthDeps(t)

	started := make(chan struct{})
	release := make(chan struct{})
	pair := stretchedPair(t)
	d.keychain.EXPECT().DeriveSessionKeys(clientEmail, clientPassword).DoAndReturn(
		func(string, string) (string, crypto.KeyPair, error) {
			close(started)
			<-release
			return clientProof, pair, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.svc.SignIn(ctx, clientCreds)
	assert.ErrorIs(t, err, context.Canceled)

	<-started
	close(release)
}

// ─────────────────────────────────────────────
// Unlock / Lock / Logout
// ─────────────────────────────────────────────

func TestClientAuth_Unlock_FromCache(t *testing.T) {
	d := newClientAuthDeps(t)

	d.accounts.EXPECT().FindAccount(gomock.Any(), clientEmail).
		Return(models.LocalAccount{Email: clientEmail, ProtectedVaultKey: "cached", ProtocolVersion: 1}, nil)
	d.keychain.EXPECT().DeriveSessionKeys(clientEmail, clientPassword).Return(clientProof, stretchedPair(t), nil)
	d.keychain.EXPECT().UnwrapVaultKey(gomock.Any(), "cached").Return(bytes.Repeat([]byte{0x09}, 64), nil)

	require.NoError(t, d.svc.Unlock(context.Background(), clientCreds))
	assert.True(t, d.svc.IsUnlocked())
}

func TestClientAuth_Unlock_NoCachedAccount(t *testing.T) {
	d := newClientAuthDeps(t)

	d.accounts.EXPECT().FindAccount(gomock.Any(), clientEmail).Return(models.LocalAccount{}, store.ErrLocalAccountNotFound)

	err := d.svc.Unlock(context.Background(), clientCreds)

	assert.ErrorIs(t, err, ErrNoLocalAccount)
}

func TestClientAuth_Lock_KeepsToken(t *testing.T) {
	d := newClientAuthDeps(t)
	require.NoError(t, d.keyring.Unlock(bytes.Repeat([]byte{0x09}, 64)))

	d.svc.Lock()

	assert.False(t, d.svc.IsUnlocked())
}

func TestClientAuth_Logout_ClearsKeyringAndToken(t *testing.T) {
	d := newClientAuthDeps(t)
	require.NoError(t, d.keyring.Unlock(bytes.Repeat([]byte{0x09}, 64)))

	d.adapter.EXPECT().SetToken("")

	require.NoError(t, d.svc.Logout(context.Background()))
	assert.False(t, d.svc.IsUnlocked())
}
