package secrets

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/music-box/internal/config"
	"github.com/go-resty/resty/v2"
)

const storeTokenHeader = "X-Secret-Store-Token"

// httpStore is the HTTP implementation of [Store]. It performs a single
// GET per secret against the store's /v1/secret/{ref} endpoint and returns
// the response body verbatim. No retry or backoff: secret resolution runs
// once at process start.
type httpStore struct {
	client *resty.Client
}

// NewHTTPStore constructs a [Store] talking to the secret store configured
// in cfg. Returns nil when no base URL is configured; the [Loader] treats a
// nil store as "references cannot be resolved".
func NewHTTPStore(cfg config.Secrets) Store {
	if cfg.BaseURL == "" {
		return nil
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)
	if cfg.Token != "" {
		cli.SetHeader(storeTokenHeader, cfg.Token)
	}

	return &httpStore{client: cli}
}

func (s *httpStore) Get(ctx context.Context, ref string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get("/v1/secret/" + ref)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSecretStoreUnavailable, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, ref)
	case resp.IsError():
		return "", fmt.Errorf("%w: http %d", ErrSecretStoreUnavailable, resp.StatusCode())
	}

	return string(resp.Body()), nil
}
