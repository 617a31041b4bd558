package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/docvault/go-doc-share/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
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

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: user.Login, Name: user.Name}, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) SaveVaultKeys(ctx context.Context, material models.VaultKeyMaterial) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(material).
		Post("/api/vault/keys")
	if err != nil {
		return fmt.Errorf("save vault keys request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetVaultKeys(ctx context.Context) (models.VaultKeyMaterial, bool, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vault/keys")
	if err != nil {
		return models.VaultKeyMaterial{}, false, fmt.Errorf("get vault keys request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultKeyMaterial{}, false, err
	}

	var vr models.VaultKeysResponse
	if err = json.Unmarshal(resp.Body(), &vr); err != nil {
		return models.VaultKeyMaterial{}, false, fmt.Errorf("decode vault keys response: %w", err)
	}

	return vr.VaultKeyMaterial, vr.Exists, nil
}

func (h *httpServerAdapter) CreateShare(ctx context.Context, req models.ShareCreateRequest) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/shares")
	if err != nil {
		return "", fmt.Errorf("create share request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var cr models.ShareCreateResponse
	if err = json.Unmarshal(resp.Body(), &cr); err != nil {
		return "", fmt.Errorf("decode create share response: %w", err)
	}

	return cr.ID, nil
}

func (h *httpServerAdapter) RevokeShare(ctx context.Context, shareID string) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("id", shareID).
		Delete("/api/shares")
	if err != nil {
		return fmt.Errorf("revoke share request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) OwnerShares(ctx context.Context, ownerID int64) ([]models.ShareToken, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("ownerId", strconv.FormatInt(ownerID, 10)).
		Get("/api/shares")
	if err != nil {
		return nil, fmt.Errorf("owner shares request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var or models.OwnerSharesResponse
	if err = json.Unmarshal(resp.Body(), &or); err != nil {
		return nil, fmt.Errorf("decode owner shares response: %w", err)
	}

	return or.Tokens, nil
}

func (h *httpServerAdapter) ReceivedShares(ctx context.Context) ([]models.ReceivedShare, error) {
	resp, err := h.authedRequest(ctx).Get("/api/shares/received")
	if err != nil {
		return nil, fmt.Errorf("received shares request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rr models.ReceivedSharesResponse
	if err = json.Unmarshal(resp.Body(), &rr); err != nil {
		return nil, fmt.Errorf("decode received shares response: %w", err)
	}

	return rr.Shares, nil
}

func (h *httpServerAdapter) DownloadSharedFile(ctx context.Context, shareID string) ([]byte, error) {
	resp, err := h.authedRequest(ctx).Get("/api/shares/" + shareID + "/file")
	if err != nil {
		return nil, fmt.Errorf("download shared file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
