// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/rpc"
	"github.com/MKhiriev/go-zk-vault/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// grpcAuthAdapter sends Register and Login over vault.v1.Auth and leaves
// every item call to the embedded HTTP adapter. Both share one token.
type grpcAuthAdapter struct {
	ServerAdapter

	auth rpc.AuthClient
	conn *grpc.ClientConn
}

// NewGRPCAuthAdapter dials adapterCfg.GRPCAddress and wraps items, which
// keeps serving the vault item calls.
func NewGRPCAuthAdapter(adapterCfg config.ClientAdapter, items ServerAdapter, logger *logger.Logger) (ServerAdapter, error) {
	conn, err := grpc.NewClient(adapterCfg.GRPCAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("invalid adapter grpc address: %w", err)
	}
	logger.Debug().Str("address", adapterCfg.GRPCAddress).Msg("gRPC auth adapter created")

	return &grpcAuthAdapter{
		ServerAdapter: items,
		auth:          rpc.NewAuthClient(conn),
		conn:          conn,
	}, nil
}

// NewServerAdapter returns the HTTP adapter, wrapped for gRPC auth when a
// gRPC address is configured.
func NewServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	httpAdapter, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger)
	if err != nil {
		return nil, err
	}
	if adapterCfg.GRPCAddress == "" {
		return httpAdapter, nil
	}

	return NewGRPCAuthAdapter(adapterCfg, httpAdapter, logger)
}

func (g *grpcAuthAdapter) Register(ctx context.Context, user models.User) error {
	reply, err := g.auth.Register(ctx, &rpc.RegisterRequest{
		Email:             user.Email,
		Proof:             user.Proof,
		ProtectedVaultKey: user.ProtectedVaultKey,
		ProtocolVersion:   user.ProtocolVersion,
	})
	if err != nil {
		return mapGRPCError(err)
	}

	g.SetToken(reply.Token)
	return nil
}

func (g *grpcAuthAdapter) Login(ctx context.Context, user models.User) (models.AuthResponse, error) {
	reply, err := g.auth.Login(ctx, &rpc.LoginRequest{Email: user.Email, Proof: user.Proof})
	if err != nil {
		return models.AuthResponse{}, mapGRPCError(err)
	}

	g.SetToken(reply.Token)
	return models.AuthResponse{
		ProtectedVaultKey: reply.ProtectedVaultKey,
		ProtocolVersion:   reply.ProtocolVersion,
	}, nil
}

// Close releases the gRPC connection.
func (g *grpcAuthAdapter) Close() error {
	return g.conn.Close()
}
