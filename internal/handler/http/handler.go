// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/ratelimit"
	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
)

// maxBodyBytes bounds every decoded request body.
const maxBodyBytes = 1 << 20

type Handler struct {
	services *service.Services
	limiter  *ratelimit.Limiter

	// hashKey enables HashSHA256 verification of request bodies when set.
	hashKey string

	logger *logger.Logger
}

// NewHandler builds the REST handler. limiter may be nil, in which case the
// authentication endpoints are not throttled.
func NewHandler(services *service.Services, limiter *ratelimit.Limiter, hashKey string, logger *logger.Logger) *Handler {
	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		hashKey:  hashKey,
		logger:   logger,
	}
}
