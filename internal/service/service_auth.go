// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/MKhiriev/go-zk-vault/internal/validators"
	"github.com/MKhiriev/go-zk-vault/models"
)

// authService is the concrete implementation of AuthService.
// It re-hashes client proofs with Argon2id before storage and issues JWTs
// scoping item requests to an account.
type authService struct {
	userRepository store.UserRepository
	proofHasher    crypto.ProofHasher
	validator      validators.Validator

	// dummyHash is verified against when the email is unknown so that both
	// failure paths cost one Argon2id computation.
	dummyHash     string
	dummyHashOnce sync.Once

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		proofHasher:    crypto.NewProofHasher(),
		validator:      validators.NewVaultValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser validates the payload, stores an Argon2id re-hash of the
// proof and persists the account. The proof itself is dropped.
//
// Returns [ErrInvalidDataProvided] on a malformed payload and
// [ErrAccountExists] when the email is taken.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = crypto.NormalizeEmail(user.Email)
	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("email", user.Email).Msg("invalid registration payload")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if user.ProtocolVersion == 0 {
		user.ProtocolVersion = crypto.ProtocolVersion
	}

	hash, err := a.proofHasher.Hash(user.Proof)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("hashing proof failed")
		return models.User{}, fmt.Errorf("hashing proof: %w", err)
	}
	user.PasswordHash = hash
	user.Proof = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			return models.User{}, ErrAccountExists
		}
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login verifies the proof against the stored hash and returns the account.
//
// An unknown email and a wrong proof both yield [ErrInvalidCredentials]
// after the same amount of hashing work.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = crypto.NormalizeEmail(user.Email)
	if err := a.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldProof); err != nil {
		log.Debug().Err(err).Msg("invalid login payload")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.verifyDummy(user.Proof)
			log.Debug().Str("email", user.Email).Msg("login for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.proofHasher.Verify(user.Proof, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("stored hash is unusable")
		return models.User{}, fmt.Errorf("verifying proof: %w", err)
	}
	if !ok {
		log.Debug().Int64("user_id", foundUser.UserID).Msg("wrong proof")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

func (a *authService) verifyDummy(proof string) {
	a.dummyHashOnce.Do(func() {
		a.dummyHash, _ = a.proofHasher.Hash("dummy proof for unknown accounts")
	})
	if a.dummyHash != "" {
		_, _ = a.proofHasher.Verify(proof, a.dummyHash)
	}
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
