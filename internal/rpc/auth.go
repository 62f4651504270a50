// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	AuthServiceName = "vault.v1.Auth"

	registerMethod = "/" + AuthServiceName + "/Register"
	loginMethod    = "/" + AuthServiceName + "/Login"
)

// RegisterRequest mirrors the body of POST /api/auth/register.
type RegisterRequest struct {
	Email             string `json:"email"`
	Proof             string `json:"proof"`
	ProtectedVaultKey string `json:"protected_vault_key"`
	ProtocolVersion   int    `json:"protocol_version,omitempty"`
}

// LoginRequest mirrors the body of POST /api/auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Proof string `json:"proof"`
}

// AuthReply carries the bearer token. Login also fills the protected vault
// key and protocol version.
type AuthReply struct {
	Token             string `json:"token"`
	ProtectedVaultKey string `json:"protected_vault_key,omitempty"`
	ProtocolVersion   int    `json:"protocol_version,omitempty"`
}

// AuthServer is implemented by the server-side gRPC handler.
type AuthServer interface {
	Register(context.Context, *RegisterRequest) (*AuthReply, error)
	Login(context.Context, *LoginRequest) (*AuthReply, error)
}

// RegisterAuthServer attaches srv to s.
func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&AuthServiceDesc, srv)
}

// AuthServiceDesc is the grpc.ServiceDesc for vault.v1.Auth.
var AuthServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: registerHandler},
		{MethodName: "Login", Handler: loginHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vault/v1/auth",
}

func registerHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).Register(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: registerMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func loginHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).Login(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: loginMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AuthClient is the client stub of vault.v1.Auth.
type AuthClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthReply, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthReply, error)
}

type authClient struct {
	cc grpc.ClientConnInterface
}

// NewAuthClient returns a stub that always calls with the JSON codec.
func NewAuthClient(cc grpc.ClientConnInterface) AuthClient {
	return &authClient{cc: cc}
}

func (c *authClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthReply, error) {
	out := new(AuthReply)
	if err := c.cc.Invoke(ctx, registerMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthReply, error) {
	out := new(AuthReply)
	if err := c.cc.Invoke(ctx, loginMethod, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withJSON(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
