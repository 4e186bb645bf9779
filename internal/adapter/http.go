package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. The request timeout of adapterCfg bounds every call; a
// timed out call fails with [ErrUnreachable].
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) ServerAdapter {
	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("host", resp.Request.RawRequest.URL.Host).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("server answered")
		return nil
	})

	return &httpServerAdapter{client: client, logger: logger}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidServerURL)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidServerURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: address must include host", ErrInvalidServerURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request prepares a call against serverURL; the returned base has no
// trailing slash.
func (h *httpServerAdapter) request(ctx context.Context, serverURL string) (*resty.Request, string, error) {
	base, err := normalizeBaseURL(serverURL)
	if err != nil {
		return nil, "", err
	}
	return h.client.R().SetContext(ctx), base, nil
}

func decode(resp *resty.Response, target any, op string) error {
	if err := json.Unmarshal(resp.Body(), target); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context, serverURL string) (models.HealthResponse, error) {
	req, base, err := h.request(ctx, serverURL)
	if err != nil {
		return models.HealthResponse{}, err
	}

	resp, err := req.Get(base + "/health")
	if err != nil {
		return models.HealthResponse{}, unreachable("health", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	var health models.HealthResponse
	if err = decode(resp, &health, "health"); err != nil {
		return models.HealthResponse{}, err
	}
	return health, nil
}

// CreatePass implements [ServerAdapter]. It POSTs an empty object to
// /api/pass/create.
func (h *httpServerAdapter) CreatePass(ctx context.Context, serverURL string) (models.Pass, error) {
	req, base, err := h.request(ctx, serverURL)
	if err != nil {
		return "", err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(struct{}{}).
		Post(base + "/api/pass/create")
	if err != nil {
		return "", unreachable("create pass", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var created models.CreatePassResponse
	if err = decode(resp, &created, "create pass"); err != nil {
		return "", err
	}
	if created.Token().IsZero() {
		return "", fmt.Errorf("create pass: server returned an empty pass")
	}
	return created.Token(), nil
}

// CheckPass implements [ServerAdapter].
func (h *httpServerAdapter) CheckPass(ctx context.Context, serverURL string, pass models.Pass) (models.CheckPassResponse, error) {
	req, base, err := h.request(ctx, serverURL)
	if err != nil {
		return models.CheckPassResponse{}, err
	}

	resp, err := req.
		SetPathParam("pass", pass.String()).
		Get(base + "/api/pass/{pass}/check")
	if err != nil {
		return models.CheckPassResponse{}, unreachable("check pass", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CheckPassResponse{}, err
	}

	var check models.CheckPassResponse
	if err = decode(resp, &check, "check pass"); err != nil {
		return models.CheckPassResponse{}, err
	}
	return check, nil
}

// FetchData implements [ServerAdapter].
func (h *httpServerAdapter) FetchData(ctx context.Context, serverURL string, pass models.Pass, domain string) (*models.RemoteData, error) {
	req, base, err := h.request(ctx, serverURL)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetPathParam("pass", pass.String()).
		SetQueryParam("domain", domain).
		Get(base + "/api/data/{pass}")
	if err != nil {
		return nil, unreachable("fetch data", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return remoteData(resp, "fetch data")
}

// UploadData implements [ServerAdapter].
func (h *httpServerAdapter) UploadData(ctx context.Context, serverURL string, pass models.Pass, domain, payload string) (models.UploadDataResponse, error) {
	req, base, err := h.request(ctx, serverURL)
	if err != nil {
		return models.UploadDataResponse{}, err
	}

	resp, err := req.
		SetPathParam("pass", pass.String()).
		SetQueryParam("domain", domain).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UploadDataRequest{Data: payload}).
		Post(base + "/api/data/{pass}")
	if err != nil {
		return models.UploadDataResponse{}, unreachable("upload data", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadDataResponse{}, err
	}

	var uploaded models.UploadDataResponse
	if err = decode(resp, &uploaded, "upload data"); err != nil {
		return models.UploadDataResponse{}, err
	}
	return uploaded, nil
}

// ListVersions implements [ServerAdapter].
func (h *httpServerAdapter) ListVersions(ctx context.Context, serverURL string, pass models.Pass, domain string, limit int) ([]models.RemoteVersion, error) {
	req, base, err := h.request(ctx, serverURL)
	if err != nil {
		return nil, err
	}

	req.SetPathParam("pass", pass.String()).SetQueryParam("domain", domain)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get(base + "/api/data/{pass}/versions")
	if err != nil {
		return nil, unreachable("list versions", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var versions models.VersionsResponse
	if err = decode(resp, &versions, "list versions"); err != nil {
		return nil, err
	}
	return versions.Versions, nil
}

// FetchVersion implements [ServerAdapter]. Unlike FetchData a missing record
// is an error matching [ErrNotFound].
func (h *httpServerAdapter) FetchVersion(ctx context.Context, serverURL string, pass models.Pass, domain, id string) (*models.RemoteData, error) {
	req, base, err := h.request(ctx, serverURL)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetPathParams(map[string]string{"pass": pass.String(), "id": id}).
		SetQueryParam("domain", domain).
		Get(base + "/api/data/{pass}/version/{id}")
	if err != nil {
		return nil, unreachable("fetch version", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return remoteData(resp, "fetch version")
}

// DeleteData implements [ServerAdapter].
func (h *httpServerAdapter) DeleteData(ctx context.Context, serverURL string, pass models.Pass, domain, versionID string) (int64, error) {
	req, base, err := h.request(ctx, serverURL)
	if err != nil {
		return 0, err
	}

	req.SetPathParam("pass", pass.String()).SetQueryParam("domain", domain)
	if versionID != "" {
		req.SetQueryParam("version_id", versionID)
	}

	resp, err := req.Delete(base + "/api/data/{pass}")
	if err != nil {
		return 0, unreachable("delete data", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var deleted models.DeleteDataResponse
	if err = decode(resp, &deleted, "delete data"); err != nil {
		return 0, err
	}
	return deleted.DeletedCount, nil
}

// Stats implements [ServerAdapter].
func (h *httpServerAdapter) Stats(ctx context.Context, serverURL string, pass models.Pass) (models.PassStatsResponse, error) {
	req, base, err := h.request(ctx, serverURL)
	if err != nil {
		return models.PassStatsResponse{}, err
	}

	resp, err := req.
		SetPathParam("pass", pass.String()).
		Get(base + "/api/stats/{pass}")
	if err != nil {
		return models.PassStatsResponse{}, unreachable("stats", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PassStatsResponse{}, err
	}

	var stats models.PassStatsResponse
	if err = decode(resp, &stats, "stats"); err != nil {
		return models.PassStatsResponse{}, err
	}
	return stats, nil
}

// QuickAccessURL implements [ServerAdapter].
func (h *httpServerAdapter) QuickAccessURL(serverURL string, pass models.Pass, domain, key string) (string, error) {
	base, err := normalizeBaseURL(serverURL)
	if err != nil {
		return "", err
	}
	if pass.IsZero() {
		return "", fmt.Errorf("quick access url: empty pass")
	}

	query := url.Values{}
	query.Set("domain", domain)
	if key != "" {
		query.Set("key", key)
	}

	return base + "/api/quick/" + url.PathEscape(pass.String()) + "?" + query.Encode(), nil
}

func remoteData(resp *resty.Response, op string) (*models.RemoteData, error) {
	var data models.DataResponse
	if err := decode(resp, &data, op); err != nil {
		return nil, err
	}
	if len(data.Data) == 0 || string(data.Data) == "null" {
		return nil, fmt.Errorf("%s: %w: response has no data", op, ErrRejected)
	}

	return &models.RemoteData{
		ID:        data.ID,
		Timestamp: data.Timestamp.Time,
		Payload:   data.Payload(),
	}, nil
}
