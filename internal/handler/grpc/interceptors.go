// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/app"
	"github.com/MKhiriev/go-zk-vault/internal/ratelimit"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

const traceIDKey = "x-trace-id"

var traceIDs = utils.NewUUIDGenerator()

// Interceptors returns the unary chain installed on the gRPC server: trace
// and access logging first, then rate limiting.
func (h *Handler) Interceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{h.withLogging, h.rateLimit}
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := traceIDs.Generate()
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(traceIDKey); len(ids) > 0 && ids[0] != "" && len(ids[0]) <= 64 {
			traceID = ids[0]
		}
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) rateLimit(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if h.limiter == nil {
		return handler(ctx, req)
	}

	key := "unknown"
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		key = ratelimit.HostOf(p.Addr.String())
	}
	if !h.limiter.Allow(key) {
		return nil, status.Error(codes.ResourceExhausted, app.MsgTooManyRequests)
	}

	return handler(ctx, req)
}
