// Package spotify is a thin client for the Spotify Web API using the
// client-credentials flow. Only the album search and album lookup endpoints
// the app needs are wrapped.
package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	tokenEndpoint = "https://accounts.spotify.com/api/token"
	apiBaseURL    = "https://api.spotify.com/v1"
)

var ErrNotFound = errors.New("album not found in catalog")

// Album is a catalog search result.
type Album struct {
	SpotifyID   string `json:"spotify_id"`
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	ImageURL    string `json:"image_url"`
	ReleaseDate string `json:"release_date"`
}

// Track belongs to an AlbumDetail.
type Track struct {
	Name       string `json:"name"`
	DurationMS int    `json:"duration_ms"`
	Number     int    `json:"number"`
}

// AlbumDetail is a full album lookup including its track list.
type AlbumDetail struct {
	Album
	Tracks []Track `json:"tracks"`
}

type Client struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	limiter      *rate.Limiter
	baseURL      string
	tokenURL     string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		// Spotify allows bursts but throttles sustained traffic hard.
		limiter:  rate.NewLimiter(rate.Limit(5), 10),
		baseURL:  apiBaseURL,
		tokenURL: tokenEndpoint,
	}
}

// token returns a valid access token, refreshing it through the
// client-credentials grant when the cached one is missing or near expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-30*time.Second)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("spotify token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("spotify token request failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("spotify token decode: %w", err)
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("spotify request failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// wire types matching the Spotify API shapes we consume
type wireImage struct {
	URL string `json:"url"`
}

type wireArtist struct {
	Name string `json:"name"`
}

type wireAlbum struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Artists     []wireArtist `json:"artists"`
	Images      []wireImage  `json:"images"`
	ReleaseDate string       `json:"release_date"`
	Tracks      struct {
		Items []struct {
			Name        string `json:"name"`
			DurationMS  int    `json:"duration_ms"`
			TrackNumber int    `json:"track_number"`
		} `json:"items"`
	} `json:"tracks"`
}

func (w wireAlbum) toAlbum() Album {
	a := Album{
		SpotifyID:   w.ID,
		Name:        w.Name,
		ReleaseDate: w.ReleaseDate,
	}
	if len(w.Artists) > 0 {
		a.Artist = w.Artists[0].Name
	}
	if len(w.Images) > 0 {
		a.ImageURL = w.Images[0].URL
	}
	return a
}

// Search queries the catalog for albums matching q, capped at 10 results.
func (c *Client) Search(ctx context.Context, q string) ([]Album, error) {
	var payload struct {
		Albums struct {
			Items []wireAlbum `json:"items"`
		} `json:"albums"`
	}

	path := "/search?type=album&limit=10&q=" + url.QueryEscape(q)
	if err := c.get(ctx, path, &payload); err != nil {
		return nil, err
	}

	albums := make([]Album, 0, len(payload.Albums.Items))
	for _, item := range payload.Albums.Items {
		albums = append(albums, item.toAlbum())
	}
	return albums, nil
}

// GetAlbum looks up one album by catalog id, including its track list.
func (c *Client) GetAlbum(ctx context.Context, id string) (*AlbumDetail, error) {
	var payload wireAlbum
	if err := c.get(ctx, "/albums/"+url.PathEscape(id), &payload); err != nil {
		return nil, err
	}

	detail := &AlbumDetail{Album: payload.toAlbum()}
	for _, t := range payload.Tracks.Items {
		detail.Tracks = append(detail.Tracks, Track{
			Name:       t.Name,
			DurationMS: t.DurationMS,
			Number:     t.TrackNumber,
		})
	}
	return detail, nil
}
