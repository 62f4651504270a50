// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc serves the vault.v1.Auth service. It mirrors the REST
// register and login endpoints for clients that prefer gRPC; vault items
// stay on HTTP.
package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-zk-vault/internal/app"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/ratelimit"
	"github.com/MKhiriev/go-zk-vault/internal/rpc"
	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Handler is the root gRPC transport handler. A single instance is created
// at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services
	limiter  *ratelimit.Limiter

	logger *logger.Logger
}

var _ rpc.AuthServer = (*Handler)(nil)

// NewHandler constructs a [Handler]. limiter may be nil.
func NewHandler(services *service.Services, limiter *ratelimit.Limiter, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		logger:   logger,
	}
}

func (h *Handler) Register(ctx context.Context, in *rpc.RegisterRequest) (*rpc.AuthReply, error) {
	user, err := h.services.AuthService.RegisterUser(ctx, models.User{
		Email:             in.Email,
		Proof:             in.Proof,
		ProtectedVaultKey: in.ProtectedVaultKey,
		ProtocolVersion:   in.ProtocolVersion,
	})
	if err != nil {
		return nil, h.statusFromError(ctx, err, "user registration failed")
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return nil, h.statusFromError(ctx, err, "creation of token failed")
	}

	return &rpc.AuthReply{Token: token.SignedString}, nil
}

func (h *Handler) Login(ctx context.Context, in *rpc.LoginRequest) (*rpc.AuthReply, error) {
	user, err := h.services.AuthService.Login(ctx, models.User{Email: in.Email, Proof: in.Proof})
	if err != nil {
		return nil, h.statusFromError(ctx, err, "login failed")
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return nil, h.statusFromError(ctx, err, "creation of token failed")
	}

	return &rpc.AuthReply{
		Token:             token.SignedString,
		ProtectedVaultKey: user.ProtectedVaultKey,
		ProtocolVersion:   user.ProtocolVersion,
	}, nil
}

// statusFromError logs err and converts it to a status carrying the same
// public message the REST transport uses.
func (h *Handler) statusFromError(ctx context.Context, err error, msg string) error {
	log := logger.FromContext(ctx)

	var st *status.Status
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		st = status.New(codes.InvalidArgument, app.MsgInvalidDataProvided)
	case errors.Is(err, service.ErrInvalidCredentials):
		st = status.New(codes.Unauthenticated, app.MsgInvalidCredentials)
	case errors.Is(err, service.ErrAccountExists):
		st = status.New(codes.AlreadyExists, app.MsgAccountExists)
	case errors.Is(err, store.ErrTemporarilyUnavailable):
		st = status.New(codes.Unavailable, app.MsgServiceUnavailable)
	default:
		log.Err(err).Msg(msg)
		return status.Error(codes.Internal, app.MsgInternalServerError)
	}

	log.Debug().Err(err).Str("code", st.Code().String()).Msg(msg)
	return st.Err()
}
