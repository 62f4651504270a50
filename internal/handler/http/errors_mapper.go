// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-zk-vault/internal/app"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/MKhiriev/go-zk-vault/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrNothingToUpdate, errorResponse{http.StatusBadRequest, app.MsgNothingToUpdate}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentials}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrValidationNoUserID, errorResponse{http.StatusUnauthorized, app.MsgNoUserIDProvided}},
	{service.ErrAccountExists, errorResponse{http.StatusConflict, app.MsgAccountExists}},
	{store.ErrVaultItemNotFound, errorResponse{http.StatusNotFound, app.MsgItemNotFound}},
	{store.ErrTemporarilyUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
}

func responseFromError(err error) errorResponse {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and answers with its mapped status and public
// message. Internal details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)
	log := logger.FromRequest(r)

	event := log.Debug()
	if resp.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", resp.status).Msg(msg)

	http.Error(w, resp.message, resp.status)
}
