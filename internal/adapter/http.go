// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises the base URL from adapterCfg.HTTPAddress and
// signs write requests with appCfg.HashKey when it is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hashKey: appCfg.HashKey,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. POST /api/auth/register; the bearer
// token comes back in the Authorization header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	req, err := h.jsonRequest(ctx, user)
	if err != nil {
		return err
	}

	resp, err := req.Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("%w: register request: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return h.storeBearer(resp)
}

// Login implements [ServerAdapter]. POST /api/auth/login returns the
// protected vault key in the body and the bearer token in the header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.AuthResponse, error) {
	req, err := h.jsonRequest(ctx, models.User{Email: user.Email, Proof: user.Proof})
	if err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	resp, err := req.SetResult(&auth).Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: login request: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if err = h.storeBearer(resp); err != nil {
		return models.AuthResponse{}, err
	}
	return auth, nil
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, fields models.VaultItemFields) (models.VaultItem, error) {
	req, err := h.jsonRequest(ctx, fields)
	if err != nil {
		return models.VaultItem{}, err
	}

	var item models.VaultItem
	resp, err := req.SetResult(&item).Post("/api/items")
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: create item request: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultItem{}, err
	}

	return item, nil
}

func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.VaultItem, error) {
	var items []models.VaultItem
	resp, err := h.authedRequest(ctx).SetResult(&items).Get("/api/items")
	if err != nil {
		return nil, fmt.Errorf("%w: list items request: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpServerAdapter) GetItem(ctx context.Context, itemID int64) (models.VaultItem, error) {
	var item models.VaultItem
	resp, err := h.authedRequest(ctx).
		SetResult(&item).
		SetPathParam("id", strconv.FormatInt(itemID, 10)).
		Get("/api/items/{id}")
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: get item request: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultItem{}, err
	}

	return item, nil
}

// UpdateItem implements [ServerAdapter]. Only the non-nil fields of update
// are sent.
func (h *httpServerAdapter) UpdateItem(ctx context.Context, update models.VaultItemUpdate) (models.VaultItem, error) {
	req, err := h.jsonRequest(ctx, update)
	if err != nil {
		return models.VaultItem{}, err
	}

	var item models.VaultItem
	resp, err := req.
		SetResult(&item).
		SetPathParam("id", strconv.FormatInt(update.ItemID, 10)).
		Patch("/api/items/{id}")
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: update item request: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultItem{}, err
	}

	return item, nil
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(itemID, 10)).
		Delete("/api/items/{id}")
	if err != nil {
		return fmt.Errorf("%w: delete item request: %w", ErrUnreachable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetAppVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("%w: version request: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// jsonRequest marshals body up front so the exact bytes sent can be signed
// with the HashSHA256 header.
func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(utils.HashHeader, utils.HashString(payload, h.hashKey))
	}

	return req, nil
}

func (h *httpServerAdapter) storeBearer(resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}
