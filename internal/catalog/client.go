// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/music-box/internal/config"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/go-resty/resty/v2"
)

// Wire types mirroring the catalog's song resource.
type songArtwork struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type songPreview struct {
	URL string `json:"url"`
}

type songAttributes struct {
	Name             string        `json:"name"`
	ArtistName       string        `json:"artistName"`
	AlbumName        string        `json:"albumName"`
	DurationInMillis int64         `json:"durationInMillis"`
	Artwork          songArtwork   `json:"artwork"`
	Previews         []songPreview `json:"previews"`
}

type songResource struct {
	ID         string         `json:"id"`
	Attributes songAttributes `json:"attributes"`
}

type songResponse struct {
	Data []songResource `json:"data"`
}

// httpClient is the resty-backed implementation of [Client].
type httpClient struct {
	client     *resty.Client
	storefront string
	logger     *logger.Logger
}

// NewClient constructs a catalog [Client] for the endpoint and storefront
// configured in cfg.
func NewClient(cfg config.AppleMusic, logger *logger.Logger) Client {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIBaseURL, "/")).
		SetTimeout(15 * time.Second)

	return &httpClient{
		client:     cli,
		storefront: cfg.Storefront,
		logger:     logger,
	}
}

func (c *httpClient) GetSong(ctx context.Context, songID, developerToken, musicUserToken string) (Song, error) {
	var payload songResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+developerToken).
		SetHeader("Music-User-Token", musicUserToken).
		SetResult(&payload).
		Get(fmt.Sprintf("/catalog/%s/songs/%s", c.storefront, songID))
	if err != nil {
		return Song{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return Song{}, ErrCatalogUnauthorized
	case resp.StatusCode() == http.StatusNotFound:
		return Song{}, ErrSongNotFound
	case resp.IsError():
		c.logger.Error().
			Int("status", resp.StatusCode()).
			Str("song_id", songID).
			Msg("catalog answered with unexpected status")
		return Song{}, fmt.Errorf("%w: http %d", ErrCatalogUnavailable, resp.StatusCode())
	}

	if len(payload.Data) == 0 {
		return Song{}, ErrSongNotFound
	}

	resource := payload.Data[0]
	song := Song{
		ID:         resource.ID,
		Name:       resource.Attributes.Name,
		ArtistName: resource.Attributes.ArtistName,
		AlbumName:  resource.Attributes.AlbumName,
		DurationMs: resource.Attributes.DurationInMillis,
		ArtworkURL: resource.Attributes.Artwork.URL,
	}
	if len(resource.Attributes.Previews) > 0 {
		song.PreviewURL = resource.Attributes.Previews[0].URL
	}

	return song, nil
}
